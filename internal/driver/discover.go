package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Extension of component files picked up by directory walks.
const Extension = ".vue"

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Discover expands paths into a sorted, de-duplicated list of files.
// Directories are walked for *.vue files, honouring the .gitignore at the
// walk root unless noIgnore is set. Paths that are not directories are kept
// as given, so unreadable inputs surface as per-file errors later.
func Discover(paths []string, noIgnore bool) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			add(root)
			continue
		}
		var matcher *ignore.GitIgnore
		if !noIgnore {
			if matcher, err = loadIgnore(root); err != nil {
				return nil, err
			}
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root {
				if d.IsDir() && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				if ignored(matcher, root, path, d.IsDir()) {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
			if !d.IsDir() && strings.HasSuffix(path, Extension) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func loadIgnore(root string) (*ignore.GitIgnore, error) {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	m, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return m, nil
}

func ignored(m *ignore.GitIgnore, root, path string, dir bool) bool {
	if m == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if dir {
		// "dist/" patterns only match with the trailing slash
		return m.MatchesPath(rel) || m.MatchesPath(rel+"/")
	}
	return m.MatchesPath(rel)
}
