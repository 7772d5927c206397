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

package defaults

import "time"

// Output defaults.
const (
	// OutputFile is the corpus file written when no output is specified.
	OutputFile = "recipes_1000.json"

	// StdoutTarget selects stdout as the output target.
	StdoutTarget = "-"

	// ConfigMapDataKey is the ConfigMap data key holding the serialized corpus,
	// suffixed with the format extension (recipes.json, recipes.yaml).
	ConfigMapDataKey = "recipes"
)

// Generation bounds shared by the synthesizer and the validator.
const (
	// MinSampledIngredients is the lower bound of the ingredient draw.
	MinSampledIngredients = 3

	// MaxSampledIngredients is the upper bound of the ingredient draw.
	MaxSampledIngredients = 6

	// MaxAppendedStaples is how many staples (oil, salt) may be appended
	// after sampling.
	MaxAppendedStaples = 2

	// OilProbability is the chance oil is appended when not already sampled.
	OilProbability = 0.7

	// MaxParallelism caps concurrent category generation.
	MaxParallelism = 16
)

// Servings lists the allowed serving sizes.
var Servings = []int{2, 4, 6}

// Remote sink timeouts.
const (
	// ConfigMapWriteTimeout is the timeout for applying the corpus ConfigMap.
	ConfigMapWriteTimeout = 30 * time.Second

	// ConfigMapReadTimeout is the timeout for reading a corpus ConfigMap.
	ConfigMapReadTimeout = 15 * time.Second

	// OCIPushTimeout is the timeout for pushing the corpus artifact.
	OCIPushTimeout = 2 * time.Minute

	// HTTPClientTimeout is the total timeout for fetching a corpus over HTTP.
	HTTPClientTimeout = 30 * time.Second
)

// Progress logging.
const (
	// ProgressLogInterval is the minimum interval between per-record debug logs.
	ProgressLogInterval = 500 * time.Millisecond
)
