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

package oci

import (
	"testing"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
)

func TestParseOutputTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantReg  string
		wantRepo string
		wantTag  string
		wantErr  bool
	}{
		{
			name:     "with tag",
			input:    "oci://ghcr.io/recipeapp/corpus:v1.0.0",
			wantReg:  "ghcr.io",
			wantRepo: "recipeapp/corpus",
			wantTag:  "v1.0.0",
		},
		{
			name:     "without tag",
			input:    "oci://ghcr.io/recipeapp/corpus",
			wantReg:  "ghcr.io",
			wantRepo: "recipeapp/corpus",
		},
		{
			name:     "port and tag",
			input:    "oci://localhost:5000/test/recipes:v1",
			wantReg:  "localhost:5000",
			wantRepo: "test/recipes",
			wantTag:  "v1",
		},
		{
			name:     "docker hub shorthand",
			input:    "oci://recipes:latest",
			wantReg:  "docker.io",
			wantRepo: "library/recipes",
			wantTag:  "latest",
		},
		{name: "local path", input: "./recipes.json", wantErr: true},
		{name: "uppercase repository", input: "oci://ghcr.io/RecipeApp/corpus", wantErr: true},
		{name: "empty", input: "oci://", wantErr: true},
		{
			name:    "digest",
			input:   "oci://ghcr.io/recipeapp/corpus@sha256:" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseOutputTarget(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOutputTarget(%q) expected error, got %+v", tt.input, ref)
				}
				if !apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest) {
					t.Errorf("error code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeInvalidRequest)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutputTarget(%q) error = %v", tt.input, err)
			}
			if ref.Registry != tt.wantReg {
				t.Errorf("Registry = %q, want %q", ref.Registry, tt.wantReg)
			}
			if ref.Repository != tt.wantRepo {
				t.Errorf("Repository = %q, want %q", ref.Repository, tt.wantRepo)
			}
			if ref.Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", ref.Tag, tt.wantTag)
			}
		})
	}
}

func TestIsOCITarget(t *testing.T) {
	if !IsOCITarget("oci://ghcr.io/a/b") {
		t.Error("expected oci:// target")
	}
	for _, s := range []string{"", "recipes.json", "cm://default/recipes", "OCI://ghcr.io/a"} {
		if IsOCITarget(s) {
			t.Errorf("IsOCITarget(%q) = true", s)
		}
	}
}

func TestReference_Strings(t *testing.T) {
	ref := &Reference{Registry: "ghcr.io", Repository: "recipeapp/corpus", Tag: "v1"}

	if got := ref.String(); got != "oci://ghcr.io/recipeapp/corpus:v1" {
		t.Errorf("String() = %q", got)
	}
	if got := ref.ImageReference(); got != "ghcr.io/recipeapp/corpus:v1" {
		t.Errorf("ImageReference() = %q", got)
	}

	untagged := ref.WithTag("")
	if got := untagged.ImageReference(); got != "ghcr.io/recipeapp/corpus" {
		t.Errorf("ImageReference() untagged = %q", got)
	}
	if ref.Tag != "v1" {
		t.Error("WithTag modified the receiver")
	}
}

func TestValidateRegistryReference(t *testing.T) {
	tests := []struct {
		name       string
		registry   string
		repository string
		wantErr    bool
	}{
		{"valid", "ghcr.io", "recipeapp/corpus", false},
		{"with port", "localhost:5000", "recipes", false},
		{"with protocol", "https://ghcr.io", "recipeapp/corpus", false},
		{"separators", "ghcr.io", "recipe-app/corpus_v1.data", false},
		{"empty registry", "", "recipes", true},
		{"registry with path", "ghcr.io/extra", "recipes", true},
		{"empty repository", "ghcr.io", "", true},
		{"uppercase", "ghcr.io", "Recipes", true},
		{"trailing slash", "ghcr.io", "recipes/", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistryReference(tt.registry, tt.repository)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistryReference() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
