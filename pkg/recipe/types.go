package recipe

import "strconv"

// Ingredient is a resolved ingredient line of a recipe. Category is a
// target-vocabulary string, never an internal key.
type Ingredient struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Amount   string `json:"amount" yaml:"amount"`
	Category string `json:"category" yaml:"category"`
}

// Recipe is one generated record. Field order matches the consumer's
// decoding model and must not change.
type Recipe struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Description  string       `json:"description" yaml:"description"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions []string     `json:"instructions" yaml:"instructions"`
	CookingTime  int          `json:"cookingTime" yaml:"cookingTime"`
	Difficulty   string       `json:"difficulty" yaml:"difficulty"`
	Servings     int          `json:"servings" yaml:"servings"`
	Category     string       `json:"category" yaml:"category"`
}

// Corpus is the ordered list of generated recipes.
type Corpus []*Recipe

// CountByCategory returns the number of recipes per vocabulary category.
func (c Corpus) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, r := range c {
		counts[r.Category]++
	}
	return counts
}

// TableHeader implements serializer.Tabular.
func (c Corpus) TableHeader() []string {
	return []string{"NAME", "CATEGORY", "DIFFICULTY", "TIME", "SERVINGS", "INGREDIENTS"}
}

// TableRows implements serializer.Tabular.
func (c Corpus) TableRows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, r := range c {
		rows = append(rows, []string{
			r.Name,
			r.Category,
			r.Difficulty,
			strconv.Itoa(r.CookingTime),
			strconv.Itoa(r.Servings),
			strconv.Itoa(len(r.Ingredients)),
		})
	}
	return rows
}
