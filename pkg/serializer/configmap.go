// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/header"
	"github.com/recipeapp/recipegen/pkg/k8s/client"
)

// FieldManager is the server-side apply field manager for ConfigMap output.
const FieldManager = "recipegen"

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithConfigMapClient uses k8s instead of the shared client.
func WithConfigMapClient(k8s client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = k8s
	}
}

// WithConfigMapKubeconfig builds the client from an explicit kubeconfig.
func WithConfigMapKubeconfig(path string) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.kubeconfig = path
	}
}

// WithConfigMapVersion records the tool version in the ConfigMap labels.
func WithConfigMapVersion(version string) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.version = version
	}
}

// ConfigMapWriter stores a serialized document in a ConfigMap, creating or
// updating it with server-side apply. The ConfigMap data holds:
//
//   - recipes.{json|yaml|txt}: the document
//   - format: the format name
//   - timestamp: RFC 3339 time of the write, or the document header timestamp
type ConfigMapWriter struct {
	namespace  string
	name       string
	format     Format
	kubeconfig string
	version    string
	client     client.Interface
}

// NewConfigMapWriter returns a writer for namespace/name.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize applies the ConfigMap holding v.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	k8s := w.client
	if k8s == nil {
		c, restCfg, err := client.GetKubeClientWithConfig(w.kubeconfig)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
		k8s = c
		slog.Info("configmap operation",
			"namespace", w.namespace,
			"name", w.name,
			"auth_method", client.AuthMethod(restCfg),
			"format", w.format)
	}

	content, err := Encode(w.format, v)
	if err != nil {
		return err
	}

	kind, version, timestamp := documentInfo(v)
	if version == "" {
		version = w.version
	}
	labels := map[string]string{
		"app.kubernetes.io/name":      "recipegen",
		"app.kubernetes.io/component": strings.ToLower(kind.String()),
	}
	if version != "" {
		labels["app.kubernetes.io/version"] = version
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(labels).
		WithData(map[string]string{
			configMapDataKey(w.format): string(content),
			"format":                   string(w.format),
			"timestamp":                timestamp,
		})

	slog.Debug("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"bytes", len(content))

	_, err = k8s.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: FieldManager,
		Force:        true,
	})
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeIO, "failed to apply ConfigMap", err,
			map[string]any{"namespace": w.namespace, "name": w.name})
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// documentInfo extracts kind, version and timestamp from a headed document.
// Headless values such as the corpus are reported as KindCorpus.
func documentInfo(v any) (kind header.Kind, version, timestamp string) {
	kind = header.KindCorpus
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k
		}
		md := h.GetMetadata()
		version = md["version"]
		timestamp = md["timestamp"]
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return kind, version, timestamp
}

// parseConfigMapURI splits cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	namespace, name, ok := strings.Cut(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if !ok {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s",
			ConfigMapURIScheme, uri)
	}
	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
