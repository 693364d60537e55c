// Package assets locates menu images on disk from the loose hints stored
// with each menu item.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

type Resolver struct {
	root string
}

func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the first existing file among Candidates(hint).
func (r *Resolver) Resolve(hint string) (string, bool) {
	for _, candidate := range r.Candidates(hint) {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Candidates lists the paths Resolve tries, in order: the hint itself, then
// the stem with .png, .jpg and .jpeg, then the hint with .png appended.
// Relative hints are taken under the root and dropped if they leave it.
// Absolute hints are tried as they are.
func (r *Resolver) Candidates(hint string) []string {
	if hint == "" {
		return nil
	}

	stem := trimExt(hint)
	variants := []string{hint, stem + ".png", stem + ".jpg", stem + ".jpeg", hint + ".png"}

	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		var candidate string
		if filepath.IsAbs(v) {
			candidate = filepath.Clean(v)
		} else {
			var ok bool
			if candidate, ok = r.underRoot(v); !ok {
				continue
			}
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}
	return out
}

// Expected is where a relative hint points under the root, whether or not
// the file exists yet. It returns "" for empty, absolute or escaping hints.
func (r *Resolver) Expected(hint string) string {
	if hint == "" || filepath.IsAbs(hint) {
		return ""
	}
	path, ok := r.underRoot(hint)
	if !ok {
		return ""
	}
	return path
}

func (r *Resolver) underRoot(rel string) (string, bool) {
	path := filepath.Join(r.root, rel)
	within, err := filepath.Rel(r.root, path)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}

// trimExt removes the last extension of the final path element. Leading
// dots of a file name do not start an extension, so ".png" has none.
func trimExt(path string) string {
	base := filepath.Base(path)
	trimmed := strings.TrimLeft(base, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return path
	}
	cut := len(trimmed) - idx
	return path[:len(path)-cut]
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
