package lib

import (
	"fmt"

	vlib "github.com/mcuadros/go-version"
)

// Oldest Eagle release whose .lbr files are XML.
const MinTemplateVersion = "6.0"

/*
	Template is a read-only view of a reference library, indexed by name
*/
type Template struct {
	library  *EagleLibrary
	symbols  map[string]*EagleLibrarySymbol
	packages map[string]*EagleLibraryPackage
}

/*
	NewTemplate indexes a reference library. Duplicate names resolve to the
	first definition.
*/
func NewTemplate(library *EagleLibrary) *Template {
	t := &Template{
		library:  library,
		symbols:  make(map[string]*EagleLibrarySymbol, len(library.Symbols)),
		packages: make(map[string]*EagleLibraryPackage, len(library.Packages)),
	}

	for _, symbol := range library.Symbols {
		if _, ok := t.symbols[symbol.Name]; !ok {
			t.symbols[symbol.Name] = symbol
		}
	}
	for _, pkg := range library.Packages {
		if _, ok := t.packages[pkg.Name]; !ok {
			t.packages[pkg.Name] = pkg
		}
	}

	return t
}

/*
	LoadTemplate opens a reference library and checks that it was written by
	an Eagle release at least as new as minVersion
*/
func LoadTemplate(src, minVersion string) (*Template, error) {
	library, err := OpenEagleLibrary(src)
	if err != nil {
		return nil, err
	}

	if err := CheckTemplateVersion(library.Version, minVersion); err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	return NewTemplate(library), nil
}

func CheckTemplateVersion(version, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	if version == "" {
		return fmt.Errorf("template has no eagle version, need %s or newer", minVersion)
	}
	if vlib.CompareSimple(version, minVersion) < 0 {
		return fmt.Errorf("template eagle version %s is older than %s", version, minVersion)
	}

	return nil
}

func (t *Template) Library() *EagleLibrary {
	return t.library
}

func (t *Template) Symbol(name string) *EagleLibrarySymbol {
	return t.symbols[name]
}

func (t *Template) Package(name string) *EagleLibraryPackage {
	return t.packages[name]
}

/*
	Pruned returns a new document holding only the named symbols and
	packages, in template order. The template is not modified.
*/
func (t *Template) Pruned(symbols, packages map[string]bool) *EagleLibrary {
	pruned := t.library.Shell()

	for _, symbol := range t.library.Symbols {
		if symbols[symbol.Name] && t.symbols[symbol.Name] == symbol {
			pruned.Symbols = append(pruned.Symbols, symbol)
		}
	}
	for _, pkg := range t.library.Packages {
		if packages[pkg.Name] && t.packages[pkg.Name] == pkg {
			pruned.Packages = append(pruned.Packages, pkg)
		}
	}

	return pruned
}
