package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayoutFile is a brick layout read from YAML:
//
//	id: arrow
//	name: Arrow
//	rows:
//	  - "0001111000"
//	  - "00b1221b00"
type LayoutFile struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ErrEmptyLayout is returned for layout files without any rows.
var ErrEmptyLayout = errors.New("layout has no rows")

// ParseLayoutYAML decodes a layout file. A missing id is derived from fallbackID.
func ParseLayoutYAML(data []byte, fallbackID string) (LayoutFile, error) {
	var lf LayoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LayoutFile{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(lf.Rows) == 0 {
		return LayoutFile{}, ErrEmptyLayout
	}
	if lf.ID == "" {
		lf.ID = fallbackID
	}
	if lf.Name == "" {
		lf.Name = lf.ID
	}
	return lf, nil
}

// LoadLayoutFile reads and parses a layout file from disk.
func LoadLayoutFile(path string) (LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lf, err := ParseLayoutYAML(data, id)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return lf, nil
}
