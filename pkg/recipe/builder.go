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

package recipe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// Progress is called when generation of a category starts.
type Progress func(category vocab.RecipeCategory, count int)

// Option configures a Builder.
type Option func(*Builder)

// WithSeed makes the corpus reproducible: the same seed, catalog,
// distribution and parallelism produce identical output.
func WithSeed(seed uint64) Option {
	return func(b *Builder) {
		b.seed = SeedFromUint64(seed)
		b.seeded = true
	}
}

// WithParallelism generates up to n categories concurrently. Values below 2
// keep generation sequential.
func WithParallelism(n int) Option {
	return func(b *Builder) {
		b.parallelism = min(max(n, 1), defaults.MaxParallelism)
	}
}

// WithProgress registers a callback invoked as each category starts.
func WithProgress(fn Progress) Option {
	return func(b *Builder) {
		b.progress = fn
	}
}

// Builder turns a distribution into an ordered corpus.
type Builder struct {
	catalog     *catalog.Catalog
	seed        Seed
	seeded      bool
	parallelism int
	progress    Progress

	progressMu sync.Mutex
}

// NewBuilder returns a Builder over cat. Without WithSeed every build uses
// a fresh random seed.
func NewBuilder(cat *catalog.Catalog, opts ...Option) *Builder {
	b := &Builder{
		catalog:     cat,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates dist.Total() recipes, category by category in dist order.
// Every category in dist is validated against the catalog before any recipe
// is generated; a malformed template aborts the build.
func (b *Builder) Build(ctx context.Context, dist catalog.Distribution) (Corpus, error) {
	start := time.Now()
	defer func() {
		buildDuration.Observe(time.Since(start).Seconds())
	}()

	if b.catalog == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "builder has no catalog")
	}
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	templates := make([]*catalog.CategoryTemplate, len(dist))
	for i, a := range dist {
		if err := b.catalog.ValidateCategory(a.Category); err != nil {
			return nil, err
		}
		templates[i], _ = b.catalog.Category(a.Category)
	}

	seed := b.seed
	if !b.seeded {
		seed = RandomSeed()
	}

	slog.Debug("building corpus",
		"categories", len(dist),
		"recipes", dist.Total(),
		"parallelism", b.parallelism,
		"seeded", b.seeded)

	var (
		corpus Corpus
		err    error
	)
	if b.parallelism > 1 {
		corpus, err = b.buildParallel(ctx, seed, dist, templates)
	} else {
		corpus, err = b.buildSequential(ctx, seed, dist, templates)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("corpus built", "recipes", len(corpus), "duration", time.Since(start))
	return corpus, nil
}

// buildSequential shares one stream across all categories.
func (b *Builder) buildSequential(ctx context.Context, seed Seed, dist catalog.Distribution,
	templates []*catalog.CategoryTemplate) (Corpus, error) {

	syn := NewSynthesizer(b.catalog, WithSynthesizerSeed(seed))
	corpus := make(Corpus, 0, dist.Total())
	for i, a := range dist {
		recipes, err := b.generate(ctx, syn, a, templates[i])
		if err != nil {
			return nil, err
		}
		corpus = append(corpus, recipes...)
	}
	return corpus, nil
}

// buildParallel gives each category its own stream derived from seed and
// merges results back in distribution order.
func (b *Builder) buildParallel(ctx context.Context, seed Seed, dist catalog.Distribution,
	templates []*catalog.CategoryTemplate) (Corpus, error) {

	results := make([]Corpus, len(dist))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)
	for i, a := range dist {
		g.Go(func() error {
			syn := NewSynthesizer(b.catalog, WithSynthesizerSeed(seed.derive(i)))
			recipes, err := b.generate(gctx, syn, a, templates[i])
			if err != nil {
				return err
			}
			results[i] = recipes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	corpus := make(Corpus, 0, dist.Total())
	for _, recipes := range results {
		corpus = append(corpus, recipes...)
	}
	return corpus, nil
}

func (b *Builder) generate(ctx context.Context, syn *Synthesizer, a catalog.Allocation,
	tmpl *catalog.CategoryTemplate) (Corpus, error) {

	b.reportProgress(a.Category, a.Count)

	logEvery := rate.Sometimes{Interval: defaults.ProgressLogInterval}
	recipes := make(Corpus, 0, a.Count)
	for i := range a.Count {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeTimeout, "corpus generation interrupted", err,
				map[string]any{"category": a.Category, "generated": i})
		}
		recipes = append(recipes, syn.Synthesize(a.Category, tmpl))
		logEvery.Do(func() {
			slog.Debug("generating recipes", "category", a.Category, "done", i+1, "total", a.Count)
		})
	}
	return recipes, nil
}

func (b *Builder) reportProgress(category vocab.RecipeCategory, count int) {
	if b.progress == nil {
		return
	}
	b.progressMu.Lock()
	defer b.progressMu.Unlock()
	b.progress(category, count)
}
