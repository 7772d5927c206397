// Package catalog holds the compiled-in generation tables: the ingredient
// catalog, the per-category recipe templates, the instruction template bank
// and the default per-category distribution.
//
// The tables ship as an embedded YAML document (data/catalog-v1.yaml) that is
// parsed once per process by Default. A parsed Catalog is immutable; callers
// share it by pointer and must not modify the slices it returns. Tests build
// substitute tables with Parse or New.
//
// Malformed tables (a template that references an unknown ingredient, an
// inverted time range, an instruction set without sequences) are reported by
// Validate and ValidateCategory as INVALID_DATA structured errors. They are
// programming errors in the tables and are never retried.
package catalog
