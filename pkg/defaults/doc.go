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

// Package defaults provides centralized configuration constants for recipegen.
//
// This package defines the output name, generation bounds and timeout values
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Output
//
// OutputFile is the documented name of the corpus written when no --output
// flag is given. The consuming application bundles this file as-is.
//
// # Timeouts
//
// Generation itself is CPU-bound and has no deadline. Timeouts only apply to
// the optional remote sinks (Kubernetes ConfigMap, OCI registry).
package defaults
