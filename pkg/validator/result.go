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
	"time"

	"github.com/recipeapp/recipegen/pkg/header"
)

// ValidationStatus is the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates no violations were found.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates at least one violation.
	ValidationStatusFail ValidationStatus = "fail"
)

// Check names a validated property.
type Check string

// Checks performed on every record and on the corpus as a whole.
const (
	CheckRecord             Check = "record"
	CheckIDFormat           Check = "id.format"
	CheckIDUnique           Check = "id.unique"
	CheckCategory           Check = "category"
	CheckDifficulty         Check = "difficulty"
	CheckIngredientCount    Check = "ingredients.count"
	CheckIngredientDistinct Check = "ingredients.distinct"
	CheckIngredientCatalog  Check = "ingredients.catalog"
	CheckIngredientCategory Check = "ingredients.category"
	CheckCookingTime        Check = "cookingTime"
	CheckServings           Check = "servings"
	CheckInstructions       Check = "instructions"
)

// ValidationResult is the complete validation report.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// CorpusSource is the path or URI of the validated corpus, if any.
	CorpusSource string `json:"corpusSource,omitempty" yaml:"corpusSource,omitempty"`

	// Summary contains aggregate statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Violations lists every failed check.
	Violations []Violation `json:"violations" yaml:"violations"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Checked is the number of records examined.
	Checked int `json:"checked" yaml:"checked"`

	// Passed is the number of records without violations.
	Passed int `json:"passed" yaml:"passed"`

	// Failed is the number of records with at least one violation.
	Failed int `json:"failed" yaml:"failed"`

	// Violations is the total number of violations.
	Violations int `json:"violations" yaml:"violations"`

	// Status is the overall outcome.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Violation is one failed check on one record.
type Violation struct {
	Index    int    `json:"index" yaml:"index"`
	RecipeID string `json:"recipeId,omitempty" yaml:"recipeId,omitempty"`
	Recipe   string `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Check    Check  `json:"check" yaml:"check"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult returns an empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Violations: make([]Violation, 0),
	}
}

// Passed reports whether the corpus had no violations.
func (r *ValidationResult) Passed() bool {
	return r.Summary.Status == ValidationStatusPass
}

// ViolationsOf returns the violations of check c.
func (r *ValidationResult) ViolationsOf(c Check) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Check == c {
			out = append(out, v)
		}
	}
	return out
}
