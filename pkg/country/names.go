package country

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/phoneinput/pkg/i18n"
)

// canonicalTable is the file name (without extension) of the fallback English table.
const canonicalTable = "canonical"

//go:embed names
var builtinNames embed.FS

// names holds per-language display names plus the canonical English fallback.
type names struct {
	canonical map[string]string
	locales   map[string]map[string]string
}

func newNames() *names {
	return &names{
		canonical: make(map[string]string),
		locales:   make(map[string]map[string]string),
	}
}

func builtin() (*names, error) {
	sub, err := fs.Sub(builtinNames, "names")
	if err != nil {
		return nil, fmt.Errorf("country: opening built-in names: %w", err)
	}
	n := newNames()
	if err := n.load(sub); err != nil {
		return nil, fmt.Errorf("country: loading built-in names: %w", err)
	}
	return n, nil
}

// load reads every {lang}.yaml / {lang}.yml file at the root of fsys.
// Entries are merged over what is already loaded.
func (n *names) load(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading names dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidNames, name, err)
		}

		base := strings.TrimSuffix(name, path.Ext(name))
		if strings.EqualFold(base, canonicalTable) {
			mergeTable(n.canonical, table)
			continue
		}

		lang := i18n.Language(base)
		if lang == "" {
			return fmt.Errorf("%w: file %q has no language name", ErrInvalidNames, name)
		}
		if n.locales[lang] == nil {
			n.locales[lang] = make(map[string]string, len(table))
		}
		mergeTable(n.locales[lang], table)
	}

	return nil
}

// resolve returns the display name of code for locale: the locale table, then
// the canonical table, then the code itself.
func (n *names) resolve(code, locale string) string {
	if name := n.locales[i18n.Language(locale)][code]; name != "" {
		return name
	}
	if name := n.canonical[code]; name != "" {
		return name
	}
	return code
}

func (n *names) languages() []string {
	return slices.Sorted(maps.Keys(n.locales))
}

func mergeTable(dst, src map[string]string) {
	for code, name := range src {
		code = strings.ToUpper(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if code != "" && name != "" {
			dst[code] = name
		}
	}
}
