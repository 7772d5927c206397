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

package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// APIVersion is the table format version understood by Parse.
const APIVersion = "v1"

var (
	//go:embed data/catalog-v1.yaml
	catalogData []byte

	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Ingredient is a catalog entry: a name, its allowed quantity expressions
// and its category key.
type Ingredient struct {
	Name     string                   `json:"name" yaml:"name"`
	Amounts  []string                 `json:"amounts" yaml:"amounts"`
	Category vocab.IngredientCategory `json:"category" yaml:"category"`
}

// TimeRange is an inclusive cooking time range in minutes.
type TimeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether minutes lies within the range.
func (r TimeRange) Contains(minutes int) bool {
	return minutes >= r.Min && minutes <= r.Max
}

// CategoryTemplate describes how recipes of one category are composed.
type CategoryTemplate struct {
	Key          vocab.RecipeCategory `json:"key" yaml:"key"`
	Names        []string             `json:"names" yaml:"names"`
	Ingredients  []string             `json:"ingredients" yaml:"ingredients"`
	TimeRange    TimeRange            `json:"timeRange" yaml:"timeRange"`
	Difficulties []vocab.Difficulty   `json:"difficulties" yaml:"difficulties"`
}

// Staples names the ingredients appended after sampling and the noun used
// in recipe names when no ingredient survives.
type Staples struct {
	Oil         string `json:"oil" yaml:"oil"`
	Salt        string `json:"salt" yaml:"salt"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// Catalog is the full set of generation tables.
type Catalog struct {
	APIVersion   string                              `json:"apiVersion" yaml:"apiVersion"`
	Staples      Staples                             `json:"staples" yaml:"staples"`
	Ingredients  []Ingredient                        `json:"ingredients" yaml:"ingredients"`
	Categories   []CategoryTemplate                  `json:"categories" yaml:"categories"`
	Instructions map[vocab.RecipeCategory][][]string `json:"instructions" yaml:"instructions"`
	Distribution Distribution                        `json:"distribution" yaml:"distribution"`

	ingredientIndex map[string]int
	categoryIndex   map[vocab.RecipeCategory]int
}

// Default returns the embedded catalog. It is parsed and validated once;
// subsequent calls return the same instance.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		cat, err := Parse(catalogData)
		if err != nil {
			defaultErr = err
			return
		}
		if err := cat.Validate(); err != nil {
			defaultErr = err
			return
		}
		defaultCatalog = cat
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a YAML table document and indexes it. It does not validate
// table contents; see Validate.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidData, "failed to unmarshal catalog data", err)
	}
	if cat.APIVersion != "" && cat.APIVersion != APIVersion {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidData,
			"unsupported catalog apiVersion",
			map[string]any{"apiVersion": cat.APIVersion, "supported": APIVersion})
	}
	cat.reindex()
	return &cat, nil
}

// New builds a catalog from in-memory tables. Like Parse, it does not
// validate.
func New(staples Staples, ingredients []Ingredient, categories []CategoryTemplate,
	instructions map[vocab.RecipeCategory][][]string, dist Distribution) *Catalog {

	cat := &Catalog{
		APIVersion:   APIVersion,
		Staples:      staples,
		Ingredients:  ingredients,
		Categories:   categories,
		Instructions: instructions,
		Distribution: dist,
	}
	cat.reindex()
	return cat
}

func (c *Catalog) reindex() {
	c.ingredientIndex = make(map[string]int, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		if _, dup := c.ingredientIndex[ing.Name]; !dup {
			c.ingredientIndex[ing.Name] = i
		}
	}
	c.categoryIndex = make(map[vocab.RecipeCategory]int, len(c.Categories))
	for i, tmpl := range c.Categories {
		if _, dup := c.categoryIndex[tmpl.Key]; !dup {
			c.categoryIndex[tmpl.Key] = i
		}
	}
}

// Ingredient returns the catalog entry for name.
func (c *Catalog) Ingredient(name string) (*Ingredient, bool) {
	i, ok := c.ingredientIndex[name]
	if !ok {
		return nil, false
	}
	return &c.Ingredients[i], true
}

// Category returns the template for key.
func (c *Catalog) Category(key vocab.RecipeCategory) (*CategoryTemplate, bool) {
	i, ok := c.categoryIndex[key]
	if !ok {
		return nil, false
	}
	return &c.Categories[i], true
}

// CategoryKeys returns template keys in declaration order.
func (c *Catalog) CategoryKeys() []vocab.RecipeCategory {
	keys := make([]vocab.RecipeCategory, 0, len(c.Categories))
	for _, tmpl := range c.Categories {
		keys = append(keys, tmpl.Key)
	}
	return keys
}

// InstructionSequences returns the instruction sequences for key, falling back
// to the main course set when key has none. The returned slices are shared
// table storage.
func (c *Catalog) InstructionSequences(key vocab.RecipeCategory) [][]string {
	if seqs, ok := c.Instructions[key]; ok {
		return seqs
	}
	return c.Instructions[vocab.CategoryMain]
}

// String implements fmt.Stringer for log output.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog %s: %d ingredients, %d categories, %d recipes by default",
		c.APIVersion, len(c.Ingredients), len(c.Categories), c.Distribution.Total())
}
