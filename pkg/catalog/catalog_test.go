package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.NotNil(t, cat)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, cat, again, "default catalog should be loaded once")

	assert.Equal(t, APIVersion, cat.APIVersion)
	assert.Len(t, cat.Ingredients, 31)
	assert.Equal(t, []vocab.RecipeCategory{
		vocab.CategoryBreakfast, vocab.CategorySalad, vocab.CategoryMain,
		vocab.CategorySoup, vocab.CategoryDessert, vocab.CategorySide,
	}, cat.CategoryKeys())
	assert.Equal(t, 1000, cat.Distribution.Total())
	assert.Equal(t, "масло", cat.Staples.Oil)
	assert.Equal(t, "соль", cat.Staples.Salt)
	assert.Equal(t, "продуктов", cat.Staples.Placeholder)
}

func TestDefaultDistributionOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	want := Distribution{
		{Category: vocab.CategoryBreakfast, Count: 200},
		{Category: vocab.CategorySalad, Count: 150},
		{Category: vocab.CategoryMain, Count: 250},
		{Category: vocab.CategorySoup, Count: 150},
		{Category: vocab.CategoryDessert, Count: 150},
		{Category: vocab.CategorySide, Count: 100},
	}
	assert.Equal(t, want, cat.Distribution)
}

func TestDefaultTemplates(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	tests := []struct {
		key          vocab.RecipeCategory
		min, max     int
		difficulties []vocab.Difficulty
	}{
		{vocab.CategoryBreakfast, 5, 30, []vocab.Difficulty{vocab.DifficultyEasy, vocab.DifficultyMedium}},
		{vocab.CategorySalad, 10, 20, []vocab.Difficulty{vocab.DifficultyEasy}},
		{vocab.CategoryMain, 30, 90, []vocab.Difficulty{vocab.DifficultyMedium, vocab.DifficultyHard}},
		{vocab.CategorySoup, 30, 60, []vocab.Difficulty{vocab.DifficultyMedium}},
		{vocab.CategoryDessert, 20, 60, []vocab.Difficulty{vocab.DifficultyMedium, vocab.DifficultyHard}},
		{vocab.CategorySide, 15, 40, []vocab.Difficulty{vocab.DifficultyEasy, vocab.DifficultyMedium}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			tmpl, ok := cat.Category(tt.key)
			require.True(t, ok)
			assert.Equal(t, TimeRange{Min: tt.min, Max: tt.max}, tmpl.TimeRange)
			assert.Equal(t, tt.difficulties, tmpl.Difficulties)
			assert.NotEmpty(t, tmpl.Names)
			for _, name := range tmpl.Ingredients {
				_, ok := cat.Ingredient(name)
				assert.True(t, ok, "pool ingredient %q should be in catalog", name)
			}
			assert.NotEmpty(t, cat.InstructionSequences(tt.key))
		})
	}
}

func TestIngredientLookup(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	ing, ok := cat.Ingredient("сыр")
	require.True(t, ok)
	assert.Equal(t, vocab.IngredientDairy, ing.Category)
	assert.Equal(t, []string{"50г", "100г", "200г"}, ing.Amounts)

	ing, ok = cat.Ingredient("перец болгарский")
	require.True(t, ok)
	assert.Equal(t, vocab.IngredientVegetables, ing.Category)

	_, ok = cat.Ingredient("трюфель")
	assert.False(t, ok)
}

func TestInstructionSequencesFallback(t *testing.T) {
	cat := New(
		Staples{Oil: "масло", Salt: "соль", Placeholder: "продуктов"},
		nil, nil,
		map[vocab.RecipeCategory][][]string{
			vocab.CategoryMain: {{"Обжарьте", "Тушите"}},
		},
		nil,
	)
	assert.Equal(t, [][]string{{"Обжарьте", "Тушите"}}, cat.InstructionSequences("brunch"))
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
}

func TestParse(t *testing.T) {
	t.Run("unsupported api version", func(t *testing.T) {
		_, err := Parse([]byte("apiVersion: v9\n"))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidData))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("ingredients: [\n"))
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidData))
	})

	t.Run("minimal table", func(t *testing.T) {
		cat, err := Parse([]byte(minimalCatalog))
		require.NoError(t, err)
		require.NoError(t, cat.Validate())
		assert.Equal(t, 2, cat.Distribution.Total())
	})
}

func TestString(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cat.String(), "catalog v1: 31 ingredients"))
}

const minimalCatalog = `
apiVersion: v1
staples:
  oil: масло
  salt: соль
  placeholder: продуктов
ingredients:
  - name: масло
    amounts: ["1 ст.л."]
    category: oils
  - name: соль
    amounts: ["щепотка"]
    category: spices
  - name: рис
    amounts: ["100г"]
    category: grains
  - name: лук
    amounts: ["1 шт"]
    category: vegetables
categories:
  - key: side
    names: ["Гарнир"]
    ingredients: ["рис", "лук"]
    timeRange: {min: 15, max: 40}
    difficulties: [easy]
instructions:
  main:
    - ["Отварите", "Подавайте"]
distribution:
  side: 2
`
