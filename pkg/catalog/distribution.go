package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// Allocation is the number of recipes to generate for one category.
type Allocation struct {
	Category vocab.RecipeCategory `json:"category" yaml:"category"`
	Count    int                  `json:"count" yaml:"count"`
}

// Distribution is an ordered list of allocations. Order is significant: the
// corpus is emitted category by category in this order.
//
// It encodes to and decodes from an ordered mapping ({"breakfast": 200, ...})
// in both JSON and YAML.
type Distribution []Allocation

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, a := range d {
		total += a.Count
	}
	return total
}

// Count returns the allocation for category, or zero.
func (d Distribution) Count(category vocab.RecipeCategory) int {
	for _, a := range d {
		if a.Category == category {
			return a.Count
		}
	}
	return 0
}

// Validate rejects empty category keys, negative counts and duplicates.
func (d Distribution) Validate() error {
	seen := make(map[vocab.RecipeCategory]struct{}, len(d))
	for i, a := range d {
		if a.Category == "" {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"distribution entry has empty category", map[string]any{"index": i})
		}
		if a.Count < 0 {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"distribution count cannot be negative",
				map[string]any{"category": a.Category, "count": a.Count})
		}
		if _, dup := seen[a.Category]; dup {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"duplicate category in distribution", map[string]any{"category": a.Category})
		}
		seen[a.Category] = struct{}{}
	}
	return nil
}

// Override returns a copy of d where categories present in o take o's count.
// Categories only in o are appended in o's order.
func (d Distribution) Override(o Distribution) Distribution {
	out := make(Distribution, 0, len(d)+len(o))
	out = append(out, d...)
	for _, a := range o {
		replaced := false
		for i := range out {
			if out[i].Category == a.Category {
				out[i].Count = a.Count
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, a)
		}
	}
	return out
}

// ParseAllocation parses a "category=count" expression.
func ParseAllocation(s string) (Allocation, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return Allocation{}, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid allocation %q: expected category=count", s))
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Allocation{}, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid allocation %q: empty category", s))
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Allocation{}, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid allocation %q: count is not a number", s), err)
	}
	if n < 0 {
		return Allocation{}, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid allocation %q: count cannot be negative", s))
	}
	return Allocation{Category: vocab.RecipeCategory(key), Count: n}, nil
}

// ParseDistribution parses repeated "category=count" expressions, keeping
// their order.
func ParseDistribution(specs []string) (Distribution, error) {
	d := make(Distribution, 0, len(specs))
	for _, s := range specs {
		a, err := ParseAllocation(s)
		if err != nil {
			return nil, err
		}
		d = append(d, a)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalYAML decodes an ordered mapping of category to count.
func (d *Distribution) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("distribution must be a mapping, got line %d", node.Line)
	}
	out := make(Distribution, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var count int
		if err := node.Content[i+1].Decode(&count); err != nil {
			return fmt.Errorf("distribution count for %q: %w", node.Content[i].Value, err)
		}
		out = append(out, Allocation{
			Category: vocab.RecipeCategory(node.Content[i].Value),
			Count:    count,
		})
	}
	*d = out
	return nil
}

// MarshalYAML encodes the distribution as an ordered mapping.
func (d Distribution) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, a := range d {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(a.Category)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(a.Count)},
		)
	}
	return node, nil
}

// UnmarshalJSON decodes an ordered JSON object of category to count.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("distribution must be a JSON object")
	}
	var out Distribution
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("distribution key must be a string")
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("distribution count for %q: %w", key, err)
		}
		out = append(out, Allocation{Category: vocab.RecipeCategory(key), Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

// MarshalJSON encodes the distribution as an ordered JSON object.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(a.Category))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(a.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
