package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir loads {lang}.json files from the root of fsys.
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadFiles(c, fsys, func(ext string) bool { return ext == ".json" }, json.Unmarshal)
	}
}

// WithYAMLDir loads {lang}.yaml and {lang}.yml files from the root of fsys.
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys)
	}
}

func loadDir(c *Catalog, fsys fs.FS) error {
	return loadFiles(c, fsys, func(ext string) bool { return ext == ".yaml" || ext == ".yml" }, yaml.Unmarshal)
}

func loadFiles(c *Catalog, fsys fs.FS, match func(ext string) bool, unmarshal func([]byte, any) error) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading strings dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		ext := strings.ToLower(path.Ext(name))
		if !match(ext) {
			continue
		}

		lang := Language(strings.TrimSuffix(name, path.Ext(name)))
		if lang == "" {
			return fmt.Errorf("%w: file %q has no language name", ErrInvalidFile, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		var s Strings
		if err := unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}

		c.strings[lang] = c.strings[lang].overlay(s)
	}

	return nil
}
