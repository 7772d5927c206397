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

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/header"
	"github.com/recipeapp/recipegen/pkg/recipe"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// Validator checks corpora against a catalog.
type Validator struct {
	// Version is recorded in result headers (typically the CLI version).
	Version string

	// Source is recorded as the corpus source in results.
	Source string

	catalog    *catalog.Catalog
	categories map[string]*catalog.CategoryTemplate
}

// Option configures a Validator.
type Option func(*Validator)

// WithVersion sets the version recorded in results.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithSource sets the corpus source recorded in results.
func WithSource(source string) Option {
	return func(v *Validator) {
		v.Source = source
	}
}

// New returns a Validator for corpora generated from cat.
func New(cat *catalog.Catalog, opts ...Option) *Validator {
	v := &Validator{
		catalog:    cat,
		categories: make(map[string]*catalog.CategoryTemplate),
	}
	if cat != nil {
		for _, key := range cat.CategoryKeys() {
			tmpl, _ := cat.Category(key)
			v.categories[vocab.TranslateOrDefault(vocab.RecipeCategories, key)] = tmpl
		}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every record of corpus and returns all violations.
// An error is returned only when validation itself cannot run.
func (v *Validator) Validate(ctx context.Context, corpus recipe.Corpus) (*ValidationResult, error) {
	start := time.Now()

	if v.catalog == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "validator has no catalog")
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, header.APIVersion, v.Version)
	result.CorpusSource = v.Source

	seen := make(map[string]int, len(corpus))
	for i, r := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		violations := v.checkRecord(i, r)
		if r != nil && r.ID != "" {
			if first, dup := seen[r.ID]; dup {
				violations = append(violations, newViolation(i, r, CheckIDUnique,
					"unique id", r.ID, fmt.Sprintf("id already used by record %d", first)))
			} else {
				seen[r.ID] = i
			}
		}

		result.Summary.Checked++
		if len(violations) == 0 {
			result.Summary.Passed++
			continue
		}
		result.Summary.Failed++
		result.Violations = append(result.Violations, violations...)
	}

	result.Summary.Violations = len(result.Violations)
	result.Summary.Duration = time.Since(start)
	result.Summary.Status = ValidationStatusPass
	if result.Summary.Violations > 0 {
		result.Summary.Status = ValidationStatusFail
	}

	slog.Debug("validation completed",
		"checked", result.Summary.Checked,
		"failed", result.Summary.Failed,
		"violations", result.Summary.Violations,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

func (v *Validator) checkRecord(i int, r *recipe.Recipe) []Violation {
	if r == nil {
		return []Violation{{Index: i, Check: CheckRecord, Message: "record is null"}}
	}

	var out []Violation
	add := func(c Check, expected, actual, msg string) {
		out = append(out, newViolation(i, r, c, expected, actual, msg))
	}

	if _, err := uuid.Parse(r.ID); err != nil {
		add(CheckIDFormat, "UUID", r.ID, err.Error())
	}

	if r.Servings <= 0 || !slices.Contains(defaults.Servings, r.Servings) {
		add(CheckServings, joinInts(defaults.Servings), strconv.Itoa(r.Servings), "")
	}

	if len(r.Instructions) == 0 {
		add(CheckInstructions, "at least one step", "0", "")
	} else if slices.Contains(r.Instructions, "") {
		add(CheckInstructions, "non-empty steps", "empty step", "")
	}

	names := make(map[string]struct{}, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if _, dup := names[ing.Name]; dup {
			add(CheckIngredientDistinct, "distinct names", ing.Name, "ingredient repeated")
		}
		names[ing.Name] = struct{}{}

		entry, ok := v.catalog.Ingredient(ing.Name)
		if !ok {
			add(CheckIngredientCatalog, "catalog ingredient", ing.Name, "ingredient not in catalog")
			if !vocab.IngredientCategories.IsVocabulary(ing.Category) {
				add(CheckIngredientCategory, "vocabulary value", ing.Category, "")
			}
			continue
		}
		want := vocab.TranslateOrDefault(vocab.IngredientCategories, entry.Category)
		if ing.Category != want {
			add(CheckIngredientCategory, want, ing.Category, fmt.Sprintf("category of %s", ing.Name))
		}
	}

	tmpl, ok := v.categories[r.Category]
	if !ok {
		add(CheckCategory, "recipe category vocabulary value", r.Category, "")
		if !vocab.Difficulties.IsVocabulary(r.Difficulty) {
			add(CheckDifficulty, "difficulty vocabulary value", r.Difficulty, "")
		}
		return out
	}

	allowed := make([]string, 0, len(tmpl.Difficulties))
	for _, d := range tmpl.Difficulties {
		allowed = append(allowed, vocab.TranslateOrDefault(vocab.Difficulties, d))
	}
	if !slices.Contains(allowed, r.Difficulty) {
		add(CheckDifficulty, strings.Join(allowed, "|"), r.Difficulty, "")
	}

	if !tmpl.TimeRange.Contains(r.CookingTime) {
		add(CheckCookingTime, fmt.Sprintf("[%d, %d]", tmpl.TimeRange.Min, tmpl.TimeRange.Max),
			strconv.Itoa(r.CookingTime), "")
	}

	pool := len(tmpl.Ingredients)
	lo := min(defaults.MinSampledIngredients, pool)
	hi := min(defaults.MaxSampledIngredients, pool) + defaults.MaxAppendedStaples
	if n := len(r.Ingredients); n < lo || n > hi {
		add(CheckIngredientCount, fmt.Sprintf("[%d, %d]", lo, hi), strconv.Itoa(n), "")
	}

	return out
}

func newViolation(i int, r *recipe.Recipe, c Check, expected, actual, msg string) Violation {
	return Violation{
		Index:    i,
		RecipeID: r.ID,
		Recipe:   r.Name,
		Check:    c,
		Expected: expected,
		Actual:   actual,
		Message:  msg,
	}
}

func joinInts(vals []int) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, "|")
}
