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

package oci

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
)

const (
	// ArtifactType identifies recipe corpus artifacts in the manifest.
	ArtifactType = "application/vnd.recipeapp.corpus"

	// LayerMediaType is the media type of the single corpus layer.
	LayerMediaType = "application/vnd.recipeapp.corpus.v1+json"
)

// PushOptions configures PushFile.
type PushOptions struct {
	// FilePath is the corpus file to push.
	FilePath string
	// Reference is the target. Its Tag must be set.
	Reference *Reference
	// MediaType overrides LayerMediaType.
	MediaType string
	// Version is recorded in the org.opencontainers.image.version annotation.
	Version string
	// Annotations are extra manifest annotations.
	Annotations map[string]string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the manifest digest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// PushFile packs the file as a single-layer OCI artifact and pushes it to
// the registry named by opts.Reference. Docker credentials are used when
// available.
func PushFile(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ref := opts.Reference
	repo, err := remote.NewRepository(stripProtocol(ref.Registry) + "/" + ref.Repository)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	slog.Info("pushing corpus as OCI artifact",
		"registry", ref.Registry,
		"repository", ref.Repository,
		"tag", ref.Tag,
	)

	result, err := pushTo(ctx, opts, repo)
	if err != nil {
		return nil, err
	}

	slog.Info("OCI artifact pushed", "reference", result.Reference, "digest", result.Digest)
	return result, nil
}

func (o PushOptions) validate() error {
	if o.FilePath == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "file path is required to push")
	}
	if o.Reference == nil {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required to push")
	}
	if o.Reference.Tag == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "tag is required to push")
	}
	return ValidateRegistryReference(o.Reference.Registry, o.Reference.Repository)
}

// pushTo packs opts.FilePath into a file store and copies the tagged
// manifest to dst.
func pushTo(ctx context.Context, opts PushOptions, dst oras.Target) (*PushResult, error) {
	absPath, err := filepath.Abs(opts.FilePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to resolve file path", err)
	}

	fs, err := file.New(filepath.Dir(absPath))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, "failed to create file store", err)
	}
	defer func() { _ = fs.Close() }()

	mediaType := opts.MediaType
	if mediaType == "" {
		mediaType = LayerMediaType
	}

	layer, err := fs.Add(ctx, filepath.Base(absPath), mediaType, absPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, "failed to add file to store", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layer},
		ManifestAnnotations: opts.annotations(),
	}
	manifest, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}

	tag := opts.Reference.Tag
	if err := fs.Tag(ctx, manifest, tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	desc, err := oras.Copy(ctx, fs, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
	}, nil
}

func (o PushOptions) annotations() map[string]string {
	a := map[string]string{
		ociv1.AnnotationTitle:   "Recipe corpus",
		ociv1.AnnotationCreated: time.Now().UTC().Format(time.RFC3339),
	}
	if o.Version != "" {
		a[ociv1.AnnotationVersion] = o.Version
	}
	for k, v := range o.Annotations {
		a[k] = v
	}
	return a
}

// stripProtocol removes an http:// or https:// prefix from a registry URL.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}

// createAuthClient creates a registry client with optional TLS
// configuration and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
