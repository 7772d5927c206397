package recipe

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/defaults"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// Seed is the key of the ChaCha8 stream behind a Synthesizer.
type Seed [32]byte

// SeedFromUint64 expands a numeric seed into a stream key.
func SeedFromUint64(v uint64) Seed {
	var s Seed
	binary.LittleEndian.PutUint64(s[:8], v)
	return s
}

// RandomSeed returns a seed read from the system entropy source.
func RandomSeed() Seed {
	var s Seed
	_, _ = crand.Read(s[:])
	return s
}

// derive returns an independent seed for stream n.
func (s Seed) derive(n int) Seed {
	d := s
	tail := binary.LittleEndian.Uint64(d[24:])
	binary.LittleEndian.PutUint64(d[24:], tail^uint64(n+1))
	return d
}

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithSynthesizerSeed fixes the random stream so output is reproducible.
func WithSynthesizerSeed(seed Seed) SynthesizerOption {
	return func(s *Synthesizer) {
		s.src = rand.NewChaCha8(seed)
	}
}

// Synthesizer composes single recipes from catalog templates.
// It owns its random stream and is not safe for concurrent use.
type Synthesizer struct {
	catalog *catalog.Catalog
	src     *rand.ChaCha8
	rng     *rand.Rand
	upper   cases.Caser
}

// NewSynthesizer returns a Synthesizer over cat. Without a seed option the
// stream is seeded from the system entropy source.
func NewSynthesizer(cat *catalog.Catalog, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		catalog: cat,
		upper:   cases.Upper(language.Russian),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rand.NewChaCha8(RandomSeed())
	}
	s.rng = rand.New(s.src)
	return s
}

// Synthesize generates one recipe for category key from tmpl.
// The template is expected to have passed catalog validation.
func (s *Synthesizer) Synthesize(key vocab.RecipeCategory, tmpl *catalog.CategoryTemplate) *Recipe {
	ingredients := s.ingredients(tmpl)
	name := s.name(tmpl, ingredients)
	cookingTime := tmpl.TimeRange.Min + s.rng.IntN(tmpl.TimeRange.Max-tmpl.TimeRange.Min+1)
	difficulty := pick(s.rng, tmpl.Difficulties)
	servings := pick(s.rng, defaults.Servings)
	instructions := slices.Clone(pick(s.rng, s.catalog.InstructionSequences(key)))
	description := s.description(key)

	recipesGenerated.WithLabelValues(string(key)).Inc()

	return &Recipe{
		ID:           s.newID(),
		Name:         name,
		Description:  description,
		Ingredients:  ingredients,
		Instructions: instructions,
		CookingTime:  cookingTime,
		Difficulty:   vocab.TranslateOrDefault(vocab.Difficulties, difficulty),
		Servings:     servings,
		Category:     vocab.TranslateOrDefault(vocab.RecipeCategories, key),
	}
}

// ingredients samples the pool without replacement, appends the staples and
// resolves every name through the catalog.
func (s *Synthesizer) ingredients(tmpl *catalog.CategoryTemplate) []Ingredient {
	n := defaults.MinSampledIngredients +
		s.rng.IntN(defaults.MaxSampledIngredients-defaults.MinSampledIngredients+1)
	selected := s.sample(tmpl.Ingredients, n)

	staples := s.catalog.Staples
	if !slices.Contains(selected, staples.Oil) && s.rng.Float64() < defaults.OilProbability {
		selected = append(selected, staples.Oil)
	}
	if !slices.Contains(selected, staples.Salt) {
		selected = append(selected, staples.Salt)
	}

	out := make([]Ingredient, 0, len(selected))
	for _, name := range selected {
		ing, ok := s.catalog.Ingredient(name)
		if !ok {
			ingredientsDropped.Inc()
			slog.Debug("dropping ingredient missing from catalog", "ingredient", name)
			continue
		}
		out = append(out, Ingredient{
			ID:       s.newID(),
			Name:     ing.Name,
			Amount:   pick(s.rng, ing.Amounts),
			Category: vocab.TranslateOrDefault(vocab.IngredientCategories, ing.Category),
		})
	}
	return out
}

// sample returns min(n, len(pool)) distinct entries of pool using a partial
// Fisher-Yates shuffle on a copy.
func (s *Synthesizer) sample(pool []string, n int) []string {
	buf := slices.Clone(pool)
	k := min(n, len(buf))
	for i := range k {
		j := i + s.rng.IntN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k:k]
}

var namePatterns = []string{
	"%[1]s с %[2]s",
	"%[1]s из %[2]s",
	"%[1]s",
	"%[1]s по-домашнему",
	"%[1]s классический",
}

func (s *Synthesizer) name(tmpl *catalog.CategoryTemplate, ingredients []Ingredient) string {
	base := pick(s.rng, tmpl.Names)
	mainIngredient := s.catalog.Staples.Placeholder
	if len(ingredients) > 0 {
		mainIngredient = ingredients[0].Name
	}
	return s.capitalize(fmt.Sprintf(pick(s.rng, namePatterns), base, mainIngredient))
}

// capitalize upper-cases the first character only.
func (s *Synthesizer) capitalize(v string) string {
	r, size := utf8.DecodeRuneInString(v)
	if r == utf8.RuneError {
		return v
	}
	return s.upper.String(v[:size]) + v[size:]
}

func (s *Synthesizer) description(key vocab.RecipeCategory) string {
	switch s.rng.IntN(5) {
	case 0:
		return "Вкусное блюдо категории " + string(key)
	case 1:
		return "Простой и быстрый рецепт"
	case 2:
		return "Домашнее блюдо"
	case 3:
		return "Классический рецепт"
	default:
		return "Проверенный временем рецепт"
	}
}

// newID draws a version 4 UUID from the synthesizer's own stream.
func (s *Synthesizer) newID() string {
	id, err := uuid.NewRandomFromReader(s.src)
	if err != nil {
		// ChaCha8.Read never fails.
		panic(err)
	}
	return id.String()
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
