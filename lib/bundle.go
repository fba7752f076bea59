package lib

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mholt/archiver"
)

/*
	Bundle zips the generated libraries in dir, plus any extra files that
	exist, into dst. It returns the number of libraries bundled.
*/
func Bundle(dst, dir string, extra ...string) (int, error) {
	libraries, err := filepath.Glob(filepath.Join(dir, "*.lbr"))
	if err != nil {
		return 0, err
	}
	if len(libraries) == 0 {
		return 0, fmt.Errorf("no libraries in %s", dir)
	}
	sort.Strings(libraries)

	sources := append([]string{}, libraries...)
	for _, path := range extra {
		if path != "" && exists(path) {
			sources = append(sources, path)
		}
	}

	z := archiver.NewZip()
	z.OverwriteExisting = true
	z.MkdirAll = true
	if err := z.Archive(sources, dst); err != nil {
		return 0, fmt.Errorf("failed to bundle libraries: %w", err)
	}

	return len(libraries), nil
}
