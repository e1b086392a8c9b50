package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mirrorsmith/platup/internal/meta"
)

// OpLog receives one callback per directory disposition. The engine never
// prints or logs on its own; the CLI wires this to its logger and tests
// substitute a recording stub.
type OpLog interface {
	Keep(path string)
	Remove(path string)
	Rename(oldPath, newPath string)
}

// NopLog discards all disposition callbacks.
type NopLog struct{}

func (NopLog) Keep(string)           {}
func (NopLog) Remove(string)         {}
func (NopLog) Rename(string, string) {}

// Stats counts the dispositions applied by one reconciliation pass.
type Stats struct {
	Kept    int
	Renamed int
	Removed int
}

// Reconcile rewrites the platform directories under root in place so that
// only releases inside the metadata range survive. Per entry: a numeric
// release outside [Min, Max] is removed recursively; a numeric release in
// range is kept; a codename with an alias graduates to its numeric name; a
// codename without one is removed recursively.
//
// Entries are processed in lexicographic name order so that repeated runs
// over identical input produce identical trees and identical commit diffs.
//
// Mutations apply immediately with no rollback. A rename whose target
// already exists fails with *AliasCollisionError and stops the pass; the
// colliding pair is left untouched but earlier dispositions stand. Callers
// recover by re-extracting into a clean tree, not by resuming.
func Reconcile(root string, platforms meta.Platforms, log OpLog) (Stats, error) {
	if log == nil {
		log = NopLog{}
	}

	var stats Stats
	names, err := scan(root)
	if err != nil {
		return stats, err
	}

	for _, name := range names {
		rel, _ := ParseName(name)
		path := filepath.Join(root, name)

		switch {
		case rel.Numeric && (rel.Level < platforms.Min || rel.Level > platforms.Max):
			if err := os.RemoveAll(path); err != nil {
				return stats, err
			}
			log.Remove(path)
			stats.Removed++

		case rel.Numeric:
			log.Keep(path)
			stats.Kept++

		default:
			target, ok := platforms.Aliases[rel.Codename]
			if !ok {
				if err := os.RemoveAll(path); err != nil {
					return stats, err
				}
				log.Remove(path)
				stats.Removed++
				continue
			}
			newPath := filepath.Join(root, fmt.Sprintf("%s-%d", rel.Prefix, target))
			if _, err := os.Lstat(newPath); err == nil {
				return stats, &AliasCollisionError{Codename: rel.Codename, From: path, To: newPath}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return stats, err
			}
			if err := os.Rename(path, newPath); err != nil {
				return stats, err
			}
			log.Rename(path, newPath)
			stats.Renamed++
		}
	}

	return stats, nil
}

// scan returns the names of root's platform entries ("android-*"), sorted
// lexicographically for deterministic processing order.
func scan(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), Prefix+"-") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
