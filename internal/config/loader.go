package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// profileSchema is the structural contract for profile files; semantic
// rules (uniqueness, positive work) live in Validate.
const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["zones"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "samples": {"type": "integer", "minimum": 1},
    "warmup": {"type": "integer", "minimum": 0},
    "unit": {"type": "string", "enum": ["ms", "fps"]},
    "zones": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "work"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "work": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("profile.json", profileSchema)

// Load reads, schema-checks, and validates a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	profile, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

// Parse decodes a YAML profile document, validates it against the embedded
// JSON Schema and the semantic rules, and applies defaults.
func Parse(data []byte) (*Profile, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	applyDefaults(&profile)

	if errs := Validate(&profile); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid profile: %s", strings.Join(msgs, "; "))
	}
	return &profile, nil
}

// validateSchema checks the raw document shape. The YAML is decoded to a
// generic value and round-tripped through JSON so the schema library sees
// the value kinds it expects.
func validateSchema(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing profile: %w", err)
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting profile for validation: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonBytes))
	dec.UseNumber()
	var jsonDoc interface{}
	if err := dec.Decode(&jsonDoc); err != nil {
		return fmt.Errorf("converting profile for validation: %w", err)
	}

	if err := compiledSchema.Validate(jsonDoc); err != nil {
		return fmt.Errorf("profile does not match schema: %w", err)
	}
	return nil
}
