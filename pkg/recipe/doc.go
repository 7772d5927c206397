// Package recipe generates the recipe corpus.
//
// # Overview
//
// Generation has two layers. A Synthesizer turns one category template into
// one Recipe record; a Builder walks an ordered Distribution and asks a
// Synthesizer for the requested number of records per category.
//
// Each record is composed as follows:
//
//  1. Ingredients: 3 to 6 distinct names are sampled from the template pool
//     (clamped to the pool size). Oil is appended with probability 0.7 when
//     it was not sampled; salt is always appended when absent. Each name is
//     resolved through the catalog to a fresh id, a random amount and a
//     translated category. Names missing from the catalog are dropped.
//  2. Name: a random base name combined with the first ingredient (or the
//     placeholder noun) in one of five patterns, first letter upper-cased.
//  3. Description, cooking time, difficulty and servings are drawn uniformly.
//  4. Instructions: one sequence from the category's instruction set, copied
//     so records never share backing arrays.
//
// Every category, difficulty and ingredient category in a Recipe is a
// target-vocabulary string (see package vocab), never an internal key.
//
// # Randomness
//
// All draws, including UUIDs, come from a single ChaCha8 stream per
// Synthesizer. A Builder created WithSeed therefore reproduces its corpus
// exactly; without it each Build uses fresh entropy.
//
// # Usage
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    return err
//	}
//	b := recipe.NewBuilder(cat, recipe.WithSeed(42), recipe.WithParallelism(4))
//	corpus, err := b.Build(ctx, cat.Distribution)
//
// With parallelism above one, categories are generated concurrently, each on
// its own stream derived from the seed, and merged back in distribution
// order.
//
// # Metrics
//
//   - recipegen_recipes_generated_total{category}
//   - recipegen_ingredients_dropped_total
//   - recipegen_build_duration_seconds
package recipe
