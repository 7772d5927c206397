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

// Package header provides the common document header used by recipegen
// output that is not bound to the consumer's fixed schema.
//
// The recipe corpus itself is a bare JSON array and never carries a header.
// Auxiliary documents (the catalog dump, validation reports) start with a
// Kubernetes-style header so they can be told apart when stored side by side,
// for example as ConfigMaps:
//
//	kind: ValidationResult
//	apiVersion: recipegen.recipeapp.dev/v1
//	metadata:
//	  timestamp: "2026-01-30T10:30:00Z"
//	  version: v0.3.0
//
// # Usage
//
//	var doc struct {
//	    header.Header `json:",inline" yaml:",inline"`
//
//	    Items []string `json:"items" yaml:"items"`
//	}
//	doc.Init(header.KindCatalog, header.APIVersion, version)
//
// Metadata keys are unprefixed; Init always sets timestamp (RFC 3339, UTC)
// and sets version when one is given.
package header
