package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

type yamlField struct {
	Fieldname string `yaml:"fieldname"`
	Fieldtype string `yaml:"fieldtype"`
	Label     string `yaml:"label"`
	Reqd      bool   `yaml:"reqd"`
	ReadOnly  bool   `yaml:"read_only"`
	Options   string `yaml:"options"`
}

type yamlMeta struct {
	Name         string      `yaml:"name"`
	Module       string      `yaml:"module"`
	Naming       string      `yaml:"naming"`
	IsChildTable bool        `yaml:"is_child_table"`
	IsSingle     bool        `yaml:"is_single"`
	Fields       []yamlField `yaml:"fields"`
}

// LoadDir reads additional record-type definitions from .yaml/.yml files in
// dir. A missing directory yields no types and no error, so a bare install
// works without one.
func LoadDir(dir string) ([]*store.Meta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	var metas []*store.Meta
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var ym yamlMeta
		if err := yaml.Unmarshal(data, &ym); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		m, err := ym.toMeta()
		if err != nil {
			return nil, fmt.Errorf("invalid record type in %s: %w", path, err)
		}
		metas = append(metas, m)
	}
	return metas, nil
}

func (y yamlMeta) toMeta() (*store.Meta, error) {
	if y.Name == "" {
		return nil, fmt.Errorf("record type name is required")
	}
	m := &store.Meta{
		Name:         y.Name,
		Module:       y.Module,
		Naming:       y.Naming,
		IsChildTable: y.IsChildTable,
		IsSingle:     y.IsSingle,
	}
	if m.Module == "" {
		m.Module = "Custom"
	}
	for _, f := range y.Fields {
		if f.Fieldname == "" {
			return nil, fmt.Errorf("field without fieldname in %s", y.Name)
		}
		m.Fields = append(m.Fields, store.FieldDef{
			Fieldname: f.Fieldname,
			Fieldtype: store.FieldType(f.Fieldtype),
			Label:     f.Label,
			Reqd:      f.Reqd,
			ReadOnly:  f.ReadOnly,
			Options:   f.Options,
		})
	}
	return m, nil
}
