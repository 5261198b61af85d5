package output

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Query extracts a single value from an exported JSON document using a
// gjson path, e.g. "zones.0.median" or `zones.#(name=="physics").mean`.
func Query(doc []byte, path string) (string, error) {
	if len(doc) == 0 {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty query path")
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}
