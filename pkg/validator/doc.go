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

// Package validator re-checks a generated corpus against the catalog it was
// generated from.
//
// # Overview
//
// Generation guarantees a set of per-record properties. The validator
// verifies them on any corpus, including one loaded back from a file, URL or
// ConfigMap, so consumers can confirm a corpus before shipping it.
//
// # Checks
//
// Per record:
//
//	id.format            id is a UUID
//	category             category is a vocabulary string with a template
//	difficulty           difficulty is one of the template's translated values
//	ingredients.count    the sampled count bounds (capped by the pool) plus up to 2 staples
//	ingredients.distinct no ingredient name repeats
//	ingredients.catalog  every ingredient name is in the catalog
//	ingredients.category ingredient category is the translated catalog category
//	cookingTime          within the template's inclusive time range
//	servings             one of 2, 4, 6
//	instructions         at least one non-empty step
//
// Across the corpus:
//
//	id.unique            recipe ids are pairwise distinct
//
// # Usage
//
//	v := validator.New(cat, validator.WithVersion(version))
//	result, err := v.Validate(ctx, corpus)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//	for _, r := range result.Violations {
//	    fmt.Printf("  #%d %s: expected %s, got %s\n", r.Index, r.Check, r.Expected, r.Actual)
//	}
//
// Violations never abort validation; every record is checked and all
// violations are reported.
package validator
