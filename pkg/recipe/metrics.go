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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Corpus generation metrics
	recipesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipegen_recipes_generated_total",
			Help: "Total number of recipes synthesized, by category key",
		},
		[]string{"category"},
	)
	ingredientsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipegen_ingredients_dropped_total",
			Help: "Total number of sampled ingredient names missing from the catalog",
		},
	)
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipegen_build_duration_seconds",
			Help:    "Duration of corpus generation in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)
)
