// Package contracts validates incoming request bodies against embedded JSON
// schemas before they are decoded into DTOs.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// Names of the registered request schemas.
const (
	SearchProductsRequest  = "search-products-request"
	RecommendationsRequest = "recommendations-request"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}

		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("failed to compile schema %s: %w", path, err)
		}
		compiledSchemas[keyFromPath(path)] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("error loading request schemas: %v", err)
	}
}

// keyFromPath turns "schemas/search-products-request.json" into
// "search-products-request".
func keyFromPath(path string) string {
	name := strings.TrimPrefix(path, "schemas/")
	return strings.TrimSuffix(name, ".json")
}

// ValidateRequest checks body against the named schema. A nil return means
// the body is safe to decode into the matching DTO.
func ValidateRequest(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema %q not registered", name)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("request validation failed: %w", err)
	}
	return nil
}
