package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/header"
)

type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable []testItem

func (t testTable) TableHeader() []string { return []string{"NAME", "VALUE"} }

func (t testTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, it := range t {
		rows = append(rows, []string{it.Name, strings.Repeat("*", it.Value)})
	}
	return rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	data := []testItem{{Name: "Салат", Value: 1}, {Name: "a<b>&c", Value: 2}}
	require.NoError(t, w.Serialize(context.Background(), data))

	out := buf.String()
	assert.Contains(t, out, `"name": "Салат"`, "non-ASCII text must be literal UTF-8")
	assert.Contains(t, out, `"a<b>&c"`, "HTML characters must not be escaped")
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"name\""), "two-space indentation: %q", out)

	var back []testItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, data, back)
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	data := []testItem{{Name: "Суп", Value: 3}}
	require.NoError(t, w.Serialize(context.Background(), data))

	var back []testItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, data, back)
}

func TestWriter_SerializeTable(t *testing.T) {
	t.Run("tabular", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(),
			testTable{{Name: "Плов", Value: 2}}))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "NAME"))
		assert.Contains(t, lines[1], "Плов")
		assert.Contains(t, lines[1], "**")
	})

	t.Run("flattened", func(t *testing.T) {
		type doc struct {
			header.Header `json:",inline" yaml:",inline"`

			Items []testItem
			Tags  map[string]string
			Next  *testItem
		}
		var buf bytes.Buffer
		d := doc{Items: []testItem{{Name: "x", Value: 1}}, Tags: map[string]string{"k": "v"}}
		d.Kind = header.KindCatalog
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), d))

		out := buf.String()
		assert.Contains(t, out, "FIELD")
		assert.Contains(t, out, "Kind")
		assert.Contains(t, out, "Items.[0].Name")
		assert.Contains(t, out, "Tags.k")
		assert.Contains(t, out, "Next")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}))
		assert.Equal(t, "<empty>\n", buf.String())
	})

	t.Run("scalar", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), 42))
		assert.Contains(t, buf.String(), "value")
		assert.Contains(t, buf.String(), "42")
	})
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter("xml", nil)
	assert.Equal(t, FormatJSON, w.format)
	assert.Equal(t, os.Stdout, w.output)
	assert.NoError(t, w.Close())
}

func TestWriter_SerializeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter(FormatJSON, &buf).Serialize(ctx, []int{1})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestNewFileWriter(t *testing.T) {
	t.Run("stdout targets", func(t *testing.T) {
		for _, target := range []string{"", "-", "  -  "} {
			s, err := NewFileWriter(FormatJSON, target)
			require.NoError(t, err)
			w, ok := s.(*Writer)
			require.True(t, ok)
			assert.Equal(t, os.Stdout, w.output)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "recipes.json")
		s, err := NewFileWriter(FormatJSON, path)
		require.NoError(t, err)
		require.NoError(t, s.Serialize(context.Background(), []testItem{{Name: "Борщ", Value: 1}}))
		require.NoError(t, s.(Closer).Close())
		require.NoError(t, s.(Closer).Close(), "second close is a no-op")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Борщ")
	})

	t.Run("uncreatable file is an error", func(t *testing.T) {
		_, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeIO))
	})

	t.Run("configmap", func(t *testing.T) {
		s, err := NewFileWriter(FormatYAML, "cm://recipes/corpus")
		require.NoError(t, err)
		cm, ok := s.(*ConfigMapWriter)
		require.True(t, ok)
		assert.Equal(t, "recipes", cm.namespace)
		assert.Equal(t, "corpus", cm.name)
		assert.Equal(t, FormatYAML, cm.format)
	})

	t.Run("invalid configmap", func(t *testing.T) {
		_, err := NewFileWriter(FormatJSON, "cm://recipes")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
	})
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode("xml", 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
}

func TestFormat(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("").IsUnknown())
	assert.Equal(t, "txt", FormatTable.Extension())
	assert.Equal(t, "json", FormatJSON.Extension())
	assert.Equal(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipes_1000.json", FormatJSON},
		{"dist.YAML", FormatYAML},
		{"dist.yml", FormatYAML},
		{"report.txt", FormatTable},
		{"report.table", FormatTable},
		{"https://example.com/recipes.json", FormatJSON},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}
