package circuit

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a circuit to a JSON file.
func WriteJSON(c *Circuit, filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal circuit: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadJSON reads a circuit from a JSON file and validates it.
func ReadJSON(filename string) (*Circuit, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var c Circuit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal circuit: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate circuit: %w", err)
	}

	return &c, nil
}

// ToJSON converts a circuit to a JSON string.
func ToJSON(c *Circuit) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses a circuit from a JSON string without validation.
func FromJSON(jsonStr string) (*Circuit, error) {
	var c Circuit
	if err := json.Unmarshal([]byte(jsonStr), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
