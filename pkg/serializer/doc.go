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

// Package serializer writes and reads recipegen documents in JSON, YAML and
// table form.
//
// # Writing
//
// NewFileWriter resolves an output target to a Serializer:
//
//   - "" or "-": stdout
//   - cm://namespace/name: a Kubernetes ConfigMap (server-side apply)
//   - anything else: a local file, created or truncated
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSON, "recipes_1000.json")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, corpus); err != nil {
//	    return err
//	}
//
// JSON output is indented with two spaces and keeps non-ASCII text and HTML
// characters literal, so Cyrillic vocabulary strings are written as UTF-8.
// A file that cannot be created is an error; there is no fallback to stdout.
//
// Values implementing Tabular render as a column table; any other value is
// flattened into FIELD/VALUE rows.
//
// # Reading
//
// FromFile[T] loads a document from a local path, an http(s) URL or a
// cm://namespace/name ConfigMap, choosing the format from the extension:
//
//	corpus, err := serializer.FromFile[recipe.Corpus]("recipes_1000.json")
//
// ConfigMaps written by ConfigMapWriter store the document under
// recipes.<ext> together with format and timestamp keys.
package serializer
