// Package core holds helpers shared by the engine packages and the command line tooling.
package core

import (
	"encoding/json"
	"fmt"
	"os"
)

const FilePermissionsUserOnly = 0600

// FromFile reads filePath and unmarshals its JSON contents into out.
func FromFile(filePath string, out any) error {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	if err := json.Unmarshal(fileBytes, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return nil
}

// WriteToFile writes v as indented JSON to filePath, readable by the current user only.
func WriteToFile(v any, filePath string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, append(b, '\n'), FilePermissionsUserOnly)
}
