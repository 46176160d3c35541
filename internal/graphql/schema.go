// Package graphql serves the CV read API: the embedded schema bound to
// gqlgen's executor and the resolvers that call the query services.
package graphql

import (
	_ "embed"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *ast.Schema
	schemaErr  error
)

// SchemaSource returns the SDL the API is built from.
func SchemaSource() string {
	return schemaSource
}

// LoadSchema parses and validates the embedded SDL once.
func LoadSchema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		s, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSource})
		if err != nil {
			schemaErr = goerrors.Wrap(err, goerrors.CategoryInternal, "load graphql schema")
			return
		}
		schema = s
	})
	return schema, schemaErr
}
