package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

func TestParseAllocation(t *testing.T) {
	tests := []struct {
		in      string
		want    Allocation
		wantErr bool
	}{
		{in: "salad=3", want: Allocation{Category: vocab.CategorySalad, Count: 3}},
		{in: " Soup = 10 ", want: Allocation{Category: vocab.CategorySoup, Count: 10}},
		{in: "main=0", want: Allocation{Category: vocab.CategoryMain, Count: 0}},
		{in: "salad", wantErr: true},
		{in: "=3", wantErr: true},
		{in: "salad=three", wantErr: true},
		{in: "salad=-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAllocation(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDistribution(t *testing.T) {
	d, err := ParseDistribution([]string{"soup=2", "breakfast=5"})
	require.NoError(t, err)
	assert.Equal(t, Distribution{
		{Category: vocab.CategorySoup, Count: 2},
		{Category: vocab.CategoryBreakfast, Count: 5},
	}, d)
	assert.Equal(t, 7, d.Total())

	_, err = ParseDistribution([]string{"soup=2", "soup=3"})
	require.Error(t, err)
}

func TestDistributionOverride(t *testing.T) {
	base := Distribution{
		{Category: vocab.CategoryBreakfast, Count: 200},
		{Category: vocab.CategorySalad, Count: 150},
	}
	got := base.Override(Distribution{
		{Category: vocab.CategorySalad, Count: 3},
		{Category: vocab.CategorySide, Count: 1},
	})
	assert.Equal(t, Distribution{
		{Category: vocab.CategoryBreakfast, Count: 200},
		{Category: vocab.CategorySalad, Count: 3},
		{Category: vocab.CategorySide, Count: 1},
	}, got)
	assert.Equal(t, 150, base.Count(vocab.CategorySalad), "override must not modify receiver")
	assert.Equal(t, 0, base.Count(vocab.CategorySide))
}

func TestDistributionYAMLOrder(t *testing.T) {
	var d Distribution
	require.NoError(t, yaml.Unmarshal([]byte("side: 1\nbreakfast: 2\nsoup: 3\n"), &d))
	assert.Equal(t, []vocab.RecipeCategory{vocab.CategorySide, vocab.CategoryBreakfast, vocab.CategorySoup},
		categories(d))

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "side: 1\nbreakfast: 2\nsoup: 3\n", string(out))

	err = yaml.Unmarshal([]byte("- side\n"), &d)
	require.Error(t, err)
}

func TestDistributionJSONOrder(t *testing.T) {
	var d Distribution
	require.NoError(t, json.Unmarshal([]byte(`{"dessert": 4, "main": 1}`), &d))
	assert.Equal(t, []vocab.RecipeCategory{vocab.CategoryDessert, vocab.CategoryMain}, categories(d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dessert":4,"main":1}`, string(out))
	assert.Equal(t, `{"dessert":4,"main":1}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &d))
	require.Error(t, json.Unmarshal([]byte(`{"main": "x"}`), &d))
}

func categories(d Distribution) []vocab.RecipeCategory {
	out := make([]vocab.RecipeCategory, 0, len(d))
	for _, a := range d {
		out = append(out, a.Category)
	}
	return out
}
