package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of JSON schema used by generated config schema
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Type       string                 `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Required   []string               `json:"required"`
	Enum       []any                  `json:"enum"`
	Minimum    *float64               `json:"minimum"`
	Maximum    *float64               `json:"maximum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

// VerifyAgainstSchema validates the config against the JSON schema from file
func VerifyAgainstSchema(cfg *Config, schemaPath string) error {
	schemaData, err := os.ReadFile(schemaPath) //nolint:gosec // schema path is controlled by us
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}
	return verify(cfg, schemaData)
}

func verify(cfg *Config, schemaData []byte) error {
	var schema schemaNode
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkNode(&schema, schema.Defs, "", configMap); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkNode walks the value along the schema, resolving local $defs references
func checkNode(node *schemaNode, defs map[string]*schemaNode, path string, value any) error {
	if node.Ref != "" {
		name := strings.TrimPrefix(node.Ref, "#/$defs/")
		def, ok := defs[name]
		if !ok {
			return fmt.Errorf("%s: unknown reference %s", path, node.Ref)
		}
		node = def
	}

	switch node.Type {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, key := range node.Required {
			if _, ok := obj[key]; !ok {
				return fmt.Errorf("%s: missing %s", path, key)
			}
		}
		for key, v := range obj {
			prop, ok := node.Properties[key]
			if !ok {
				return fmt.Errorf("%s: unexpected property %s", path, key)
			}
			if err := checkNode(prop, defs, strings.TrimPrefix(path+"."+key, "."), v); err != nil {
				return err
			}
		}
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected string", path)
		}
		if len(node.Enum) > 0 && s != "" && !slices.Contains(node.Enum, any(s)) {
			return fmt.Errorf("%s: %q is not one of %v", path, s, node.Enum)
		}
	case "integer", "number":
		n, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%s: expected number", path)
		}
		if node.Minimum != nil && n < *node.Minimum {
			return fmt.Errorf("%s: %v is below minimum %v", path, n, *node.Minimum)
		}
		if node.Maximum != nil && n > *node.Maximum {
			return fmt.Errorf("%s: %v is above maximum %v", path, n, *node.Maximum)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean", path)
		}
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check sync config if enabled
	if cfg.Sync.Enabled {
		if cfg.Sync.Interval == 0 {
			return fmt.Errorf("sync.interval is required when sync is enabled")
		}
		if cfg.Sync.PageSize == 0 {
			return fmt.Errorf("sync.page_size is required when sync is enabled")
		}
	}

	if cfg.Stories.URL != "" && cfg.Stories.TTL == 0 {
		return fmt.Errorf("stories.ttl is required when stories url is set")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
