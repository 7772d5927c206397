package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// Validate checks the whole catalog and reports every problem found as a
// single INVALID_DATA error.
func (c *Catalog) Validate() error {
	var errs []error
	errs = append(errs, c.validateIngredients()...)

	seen := make(map[vocab.RecipeCategory]struct{}, len(c.Categories))
	for i := range c.Categories {
		tmpl := &c.Categories[i]
		if _, dup := seen[tmpl.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate category template %q", tmpl.Key))
		}
		seen[tmpl.Key] = struct{}{}
		errs = append(errs, c.validateTemplate(tmpl)...)
	}

	if _, ok := c.Instructions[vocab.CategoryMain]; !ok {
		errs = append(errs, fmt.Errorf("missing fallback instruction set %q", vocab.CategoryMain))
	}
	for _, key := range slices.Sorted(maps.Keys(c.Instructions)) {
		errs = append(errs, validateInstructions(key, c.Instructions[key])...)
	}

	for _, a := range c.Distribution {
		if _, ok := c.Category(a.Category); !ok {
			errs = append(errs, fmt.Errorf("distribution references unknown category %q", a.Category))
		}
	}
	if err := c.Distribution.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidData, "catalog validation failed", errors.Join(errs...))
}

// ValidateCategory checks only what generating recipes for key depends on:
// the template, its pool, the staples and the instruction set used.
func (c *Catalog) ValidateCategory(key vocab.RecipeCategory) error {
	tmpl, ok := c.Category(key)
	if !ok {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unknown recipe category", map[string]any{"category": key})
	}

	errs := c.validateTemplate(tmpl)
	seqs := c.InstructionSequences(key)
	if len(seqs) == 0 {
		errs = append(errs, fmt.Errorf("no instruction sequences for category %q", key))
	} else {
		errs = append(errs, validateInstructions(key, seqs)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidData, "category template is malformed",
		errors.Join(errs...), map[string]any{"category": key})
}

func (c *Catalog) validateIngredients() []error {
	var errs []error
	if len(c.Ingredients) == 0 {
		errs = append(errs, errors.New("ingredient catalog is empty"))
	}
	names := make(map[string]struct{}, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		if ing.Name == "" {
			errs = append(errs, fmt.Errorf("ingredient %d has empty name", i))
			continue
		}
		if _, dup := names[ing.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate ingredient %q", ing.Name))
		}
		names[ing.Name] = struct{}{}
		if len(ing.Amounts) == 0 {
			errs = append(errs, fmt.Errorf("ingredient %q has no amounts", ing.Name))
		}
		for _, amt := range ing.Amounts {
			if amt == "" {
				errs = append(errs, fmt.Errorf("ingredient %q has an empty amount", ing.Name))
				break
			}
		}
	}
	if c.Staples.Oil == "" || c.Staples.Salt == "" {
		errs = append(errs, errors.New("staples oil and salt must be set"))
	}
	for _, staple := range []string{c.Staples.Oil, c.Staples.Salt} {
		if staple == "" {
			continue
		}
		if _, ok := c.Ingredient(staple); !ok {
			errs = append(errs, fmt.Errorf("staple %q is not in the ingredient catalog", staple))
		}
	}
	return errs
}

func (c *Catalog) validateTemplate(tmpl *CategoryTemplate) []error {
	var errs []error
	if tmpl.Key == "" {
		errs = append(errs, errors.New("category template has empty key"))
	}
	if len(tmpl.Names) == 0 {
		errs = append(errs, fmt.Errorf("category %q has no base names", tmpl.Key))
	}
	if len(tmpl.Ingredients) == 0 {
		errs = append(errs, fmt.Errorf("category %q has an empty ingredient pool", tmpl.Key))
	}
	for _, name := range tmpl.Ingredients {
		if _, ok := c.Ingredient(name); !ok {
			errs = append(errs, fmt.Errorf("category %q references unknown ingredient %q", tmpl.Key, name))
		}
	}
	if tmpl.TimeRange.Min <= 0 || tmpl.TimeRange.Min > tmpl.TimeRange.Max {
		errs = append(errs, fmt.Errorf("category %q has invalid time range [%d, %d]",
			tmpl.Key, tmpl.TimeRange.Min, tmpl.TimeRange.Max))
	}
	if len(tmpl.Difficulties) == 0 {
		errs = append(errs, fmt.Errorf("category %q has no difficulties", tmpl.Key))
	}
	return errs
}

func validateInstructions(key vocab.RecipeCategory, seqs [][]string) []error {
	var errs []error
	if len(seqs) == 0 {
		errs = append(errs, fmt.Errorf("instruction set %q is empty", key))
	}
	for i, seq := range seqs {
		if len(seq) == 0 {
			errs = append(errs, fmt.Errorf("instruction set %q sequence %d has no steps", key, i))
			continue
		}
		for j, step := range seq {
			if step == "" {
				errs = append(errs, fmt.Errorf("instruction set %q sequence %d step %d is empty", key, i, j))
			}
		}
	}
	return errs
}
