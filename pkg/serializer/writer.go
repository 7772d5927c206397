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

	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
)

// Writer serializes documents to an io.Writer. Close must be called when the
// Writer was created for a file.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for output. A nil output means stdout and an
// unknown format falls back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter returns a Writer for stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriter resolves target to a Serializer: stdout for "" or "-", a
// ConfigMapWriter for cm://namespace/name, a file otherwise.
func NewFileWriter(format Format, target string, opts ...ConfigMapOption) (Serializer, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" || trimmed == defaults.StdoutTarget {
		return NewStdoutWriter(format), nil
	}

	if strings.HasPrefix(trimmed, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap target", err)
		}
		return NewConfigMapWriter(namespace, name, format, opts...), nil
	}

	file, err := os.Create(trimmed)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeIO, "failed to create output file", err,
			map[string]any{"path": trimmed})
	}

	w := NewWriter(format, file)
	w.closer = file
	return w, nil
}

// Close releases the underlying file, if any. It is safe to call more than
// once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Serialize encodes v and writes it in one call.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	content, err := Encode(w.format, v)
	if err != nil {
		return err
	}
	if _, err := w.output.Write(content); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, "failed to write output", err)
	}
	return nil
}

// Encode renders v in format.
func Encode(format Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize to JSON", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize to YAML", err)
		}
		if err := enc.Close(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to flush YAML", err)
		}
	case FormatTable:
		if err := renderTable(&buf, v); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render table", err)
		}
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("unsupported format: %s", format))
	}
	return buf.Bytes(), nil
}
