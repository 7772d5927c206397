package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/k8s/client"
)

// Reader decodes JSON or YAML documents from an io.Reader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader for input. Table format cannot be read.
// When input is an io.Closer, Close closes it.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("unknown format: %s", format))
	}
	if format == FormatTable {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens a local file or fetches an http(s) URL.
func NewFileReader(ctx context.Context, format Format, path string) (*Reader, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err := NewHttpReader().Read(ctx, path)
		if err != nil {
			return nil, err
		}
		return NewReader(format, bytes.NewReader(data))
	}

	file, err := os.Open(path)
	if err != nil {
		code := apperrors.ErrCodeIO
		if os.IsNotExist(err) {
			code = apperrors.ErrCodeNotFound
		}
		return nil, apperrors.WrapWithContext(code, "failed to open file", err, map[string]any{"path": path})
	}

	r, err := NewReader(format, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return apperrors.New(apperrors.ErrCodeInternal, "reader has no input")
	}

	var err error
	switch r.format {
	case FormatJSON:
		err = json.NewDecoder(r.input).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r.input).Decode(v)
	default:
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported format for deserialization: %s", r.format))
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidData,
			fmt.Sprintf("failed to decode %s", strings.ToUpper(string(r.format))), err)
	}
	return nil
}

// Close closes the input when it is closeable. It is safe to call more
// than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a T from a local path, an http(s) URL or a
// cm://namespace/name ConfigMap.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	return FromFileWithKubeconfig[T](ctx, path, "")
}

// FromFileWithKubeconfig is FromFile with an explicit kubeconfig for
// ConfigMap sources.
func FromFileWithKubeconfig[T any](ctx context.Context, path, kubeconfig string) (*T, error) {
	if strings.HasPrefix(path, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap URI", err)
		}
		k8s, _, err := client.GetKubeClientWithConfig(kubeconfig)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
		return fromConfigMap[T](ctx, k8s, namespace, name)
	}

	format := FormatFromPath(path)
	slog.Debug("loading document", "path", path, "format", format)

	r, err := NewFileReader(ctx, format, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close reader", "error", cerr)
		}
	}()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.CodeOf(err), "failed to load document", err,
			map[string]any{"path": path})
	}
	return &v, nil
}

// fromConfigMap reads a document written by ConfigMapWriter.
func fromConfigMap[T any](ctx context.Context, k8s client.Interface, namespace, name string) (*T, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "failed to get ConfigMap", err,
			map[string]any{"namespace": namespace, "name": name})
	}

	format := FormatJSON
	if f, ok := cm.Data["format"]; ok && !Format(f).IsUnknown() {
		format = Format(f)
	}

	content, ok := cm.Data[configMapDataKey(format)]
	if !ok {
		for _, f := range []Format{FormatJSON, FormatYAML} {
			if c, found := cm.Data[configMapDataKey(f)]; found {
				content, format, ok = c, f, true
				break
			}
		}
	}
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound, "ConfigMap has no document data",
			map[string]any{"namespace": namespace, "name": name})
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	r, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func configMapDataKey(format Format) string {
	return defaults.ConfigMapDataKey + "." + format.Extension()
}
