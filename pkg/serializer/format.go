package serializer

import (
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
)

// Format is an output format.
type Format string

const (
	// FormatJSON is the corpus contract format.
	FormatJSON Format = "json"
	// FormatYAML is human-readable YAML.
	FormatYAML Format = "yaml"
	// FormatTable is a human-readable table. It cannot be read back.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Extension returns the file extension used for f in ConfigMap keys.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// SupportedFormats lists the accepted format names.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format %q", s),
			map[string]any{"supported": SupportedFormats()})
	}
	return f, nil
}

// FormatFromPath picks a format from the file extension:
// .json, .yaml/.yml and .table/.txt. Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".table"), strings.HasSuffix(lower, ".txt"):
		return FormatTable
	default:
		slog.Debug("unknown file extension, defaulting to JSON", "path", path)
		return FormatJSON
	}
}
