package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scene description extensions (lowercase, with leading dot).
var sceneExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// Discover returns the scene files under path. A file path is returned as
// is. A directory is walked for files with scene extensions, pruning hidden
// directories, and the result is sorted lexicographically for deterministic
// processing order.
func Discover(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scene path: %w", err)
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if sceneExtensions[strings.ToLower(filepath.Ext(p))] {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
