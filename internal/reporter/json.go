package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
)

// GenerateJSONReport writes the result to path as indented JSON
func GenerateJSONReport(result models.ScanResult, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	// Marshal to JSON
	data, err := json.MarshalIndent(result.Normalized(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
