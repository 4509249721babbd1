// Package source finds the files under the directories handed to shellingo.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/shellingo/shellingo/internal/logging"
)

// Roots returns args as scan roots, or the working directory when args is
// empty.
func Roots(args []string) ([]string, error) {
	if len(args) > 0 {
		roots := make([]string, len(args))
		copy(roots, args)
		return roots, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return []string{wd}, nil
}

// Scan walks every root recursively and returns the regular files found,
// sorted and without duplicates. Entries that cannot be read are logged
// through the context logger and skipped. Only cancellation of ctx stops
// the scan early.
func Scan(ctx context.Context, roots []string) ([]string, error) {
	log := logging.FromContext(ctx)
	seen := make(map[string]struct{})
	var files []string

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable directory entry")
				return nil
			}
			if !isRegularFile(path, d) {
				return nil
			}
			if _, dup := seen[path]; dup {
				return nil
			}
			seen[path] = struct{}{}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	log.Debug().Int("files", len(files)).Strs("roots", roots).Msg("scan complete")
	return files, nil
}

// isRegularFile reports whether d is a file, following symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.IsDir() {
		return false
	}
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
