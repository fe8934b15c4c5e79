package memstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a fixture holding a list of products. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadFile(path string) ([]catalog.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var out []catalog.Product
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &out)
	default:
		err = json.Unmarshal(b, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i, p := range out {
		if p.ID == "" {
			return nil, fmt.Errorf("seed file %s: product #%d has no id", path, i)
		}
	}
	return out, nil
}
