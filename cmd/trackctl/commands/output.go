package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return encoder.Close()
}
