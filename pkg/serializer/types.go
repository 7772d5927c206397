package serializer

import "context"

// ConfigMapURIScheme prefixes ConfigMap targets: cm://namespace/name.
const ConfigMapURIScheme = "cm://"

// Serializer writes a document to its target.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers that hold resources.
type Closer interface {
	Close() error
}

// Tabular is implemented by values with a natural column layout.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}
