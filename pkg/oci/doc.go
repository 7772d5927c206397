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

// Package oci publishes a generated corpus file to an OCI registry.
//
// The corpus is pushed as an OCI 1.1 artifact: a manifest with artifact type
// "application/vnd.recipeapp.corpus" and a single layer of media type
// "application/vnd.recipeapp.corpus.v1+json" holding the file as written.
// Consumers that do not understand the type should treat it as an opaque blob.
//
// # Usage
//
//	ref, err := oci.ParseOutputTarget("oci://ghcr.io/recipeapp/corpus:v1")
//	if err != nil {
//	    return err
//	}
//	result, err := oci.PushFile(ctx, oci.PushOptions{
//	    FilePath:  "recipes_1000.json",
//	    Reference: ref,
//	    Version:   version,
//	})
//
// # Authentication
//
// Credentials are loaded from the Docker configuration (~/.docker/config.json)
// and its credential helpers. PlainHTTP and InsecureTLS support local
// development registries.
package oci
