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

// Package vocab holds the translation tables from the generator's internal
// lowercase keys to the vocabulary strings the RecipeApp client decodes.
//
// The client's enums are fixed and case-sensitive, so every category,
// difficulty and ingredient-category value written to a corpus must come
// from one of these tables. Unknown keys never fail: TranslateOrDefault
// resolves them to the table's documented fallback.
package vocab

import "slices"

// IngredientCategory is an internal ingredient category key (e.g. "dairy").
type IngredientCategory string

// RecipeCategory is an internal recipe category key (e.g. "breakfast").
type RecipeCategory string

// Difficulty is an internal difficulty key (e.g. "easy").
type Difficulty string

const (
	IngredientDairy      IngredientCategory = "dairy"
	IngredientVegetables IngredientCategory = "vegetables"
	IngredientFruits     IngredientCategory = "fruits"
	IngredientMeat       IngredientCategory = "meat"
	IngredientFish       IngredientCategory = "fish"
	IngredientGrains     IngredientCategory = "grains"
	IngredientSpices     IngredientCategory = "spices"
	IngredientOils       IngredientCategory = "oils"
	IngredientBasics     IngredientCategory = "basics"
	IngredientOther      IngredientCategory = "other"
)

const (
	CategoryBreakfast RecipeCategory = "breakfast"
	CategorySalad     RecipeCategory = "salad"
	CategoryMain      RecipeCategory = "main"
	CategorySoup      RecipeCategory = "soup"
	CategoryDessert   RecipeCategory = "dessert"
	CategorySide      RecipeCategory = "side"
)

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Entry is a single key to vocabulary string mapping.
type Entry[K ~string] struct {
	Key   K      `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Table is an immutable, ordered translation table with a fallback value.
// The zero value is not usable; tables are built with NewTable.
type Table[K ~string] struct {
	name     string
	fallback K
	entries  []Entry[K]
	index    map[K]string
	values   map[string]struct{}
}

// NewTable builds a table from ordered entries. The fallback key must be one
// of the entries; NewTable panics otherwise since tables are compiled in.
func NewTable[K ~string](name string, fallback K, entries ...Entry[K]) *Table[K] {
	t := &Table[K]{
		name:     name,
		fallback: fallback,
		entries:  slices.Clone(entries),
		index:    make(map[K]string, len(entries)),
		values:   make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		t.index[e.Key] = e.Value
		t.values[e.Value] = struct{}{}
	}
	if _, ok := t.index[fallback]; !ok {
		panic("vocab: fallback key " + string(fallback) + " missing from table " + name)
	}
	return t
}

// Name returns the table name used in logs and catalog dumps.
func (t *Table[K]) Name() string {
	return t.name
}

// Lookup returns the vocabulary string for key and whether it was mapped.
func (t *Table[K]) Lookup(key K) (string, bool) {
	v, ok := t.index[key]
	return v, ok
}

// Default returns the fallback vocabulary string.
func (t *Table[K]) Default() string {
	return t.index[t.fallback]
}

// Contains reports whether key has an explicit mapping.
func (t *Table[K]) Contains(key K) bool {
	_, ok := t.index[key]
	return ok
}

// IsVocabulary reports whether value is one of the table's target strings.
func (t *Table[K]) IsVocabulary(value string) bool {
	_, ok := t.values[value]
	return ok
}

// Entries returns a copy of the table entries in declaration order.
func (t *Table[K]) Entries() []Entry[K] {
	return slices.Clone(t.entries)
}

// Keys returns the internal keys in declaration order.
func (t *Table[K]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Values returns the vocabulary strings in declaration order.
func (t *Table[K]) Values() []string {
	values := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		values = append(values, e.Value)
	}
	return values
}

// TranslateOrDefault maps key through table, resolving unmapped keys to the
// table's fallback value. It is the only place the lenient mapping lives.
func TranslateOrDefault[K ~string](table *Table[K], key K) string {
	if v, ok := table.Lookup(key); ok {
		return v
	}
	return table.Default()
}

// IngredientCategories maps ingredient category keys. Fallback: Другое.
var IngredientCategories = NewTable("ingredientCategory", IngredientOther,
	Entry[IngredientCategory]{IngredientDairy, "Молочные"},
	Entry[IngredientCategory]{IngredientVegetables, "Овощи"},
	Entry[IngredientCategory]{IngredientFruits, "Фрукты"},
	Entry[IngredientCategory]{IngredientMeat, "Мясо"},
	Entry[IngredientCategory]{IngredientFish, "Рыба"},
	Entry[IngredientCategory]{IngredientGrains, "Крупы"},
	Entry[IngredientCategory]{IngredientSpices, "Специи"},
	Entry[IngredientCategory]{IngredientOils, "Масла"},
	Entry[IngredientCategory]{IngredientBasics, "Базовые"},
	Entry[IngredientCategory]{IngredientOther, "Другое"},
)

// RecipeCategories maps recipe category keys. Fallback: Основное (main).
var RecipeCategories = NewTable("recipeCategory", CategoryMain,
	Entry[RecipeCategory]{CategoryBreakfast, "Завтрак"},
	Entry[RecipeCategory]{CategorySalad, "Салат"},
	Entry[RecipeCategory]{CategoryMain, "Основное"},
	Entry[RecipeCategory]{CategorySoup, "Суп"},
	Entry[RecipeCategory]{CategoryDessert, "Десерт"},
	Entry[RecipeCategory]{CategorySide, "Гарнир"},
)

// Difficulties maps difficulty keys. Fallback: Легко (easy).
var Difficulties = NewTable("difficulty", DifficultyEasy,
	Entry[Difficulty]{DifficultyEasy, "Легко"},
	Entry[Difficulty]{DifficultyMedium, "Средне"},
	Entry[Difficulty]{DifficultyHard, "Сложно"},
)
