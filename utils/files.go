package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func CheckFileExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

// MustAbs returns the cleaned absolute form of p. An empty path stays empty.
func MustAbs(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	a, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs(%q): %v", p, err)
	}
	return filepath.Clean(a), nil
}

func ContainsDir(dirs []string, dir string) bool {
	dir = filepath.Clean(dir)
	for _, d := range dirs {
		if filepath.Clean(d) == dir {
			return true
		}
	}
	return false
}

// RelToAny returns an import-style path (forward slashes) for abs under any root; "" if none match.
func RelToAny(abs string, roots []string) string {
	abs = filepath.Clean(abs)
	for _, r := range roots {
		r = filepath.Clean(r)
		if rel, err := filepath.Rel(r, abs); err == nil && !strings.HasPrefix(rel, "..") && !strings.HasPrefix(filepath.ToSlash(rel), "../") {
			return filepath.ToSlash(rel)
		}
	}
	return ""
}

// ImportRoots normalizes the primary root and the extra include paths to
// absolute directories, primary first, without duplicates.
func ImportRoots(root string, extra []string) ([]string, error) {
	var roots []string
	for _, p := range append([]string{root}, extra...) {
		if p == "" {
			continue
		}
		abs, err := MustAbs(p)
		if err != nil {
			return nil, err
		}
		if !ContainsDir(roots, abs) {
			roots = append(roots, abs)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no import root given")
	}
	return roots, nil
}

// ImportPath turns the entry file argument into the import path the compiler
// expects. A path that exists relative to the primary root is taken as is,
// otherwise the file is resolved from the working directory and made relative
// to whichever root contains it. Unresolvable relative paths are returned
// unchanged and left for the compiler to report.
func ImportPath(entry string, roots []string) (string, error) {
	if entry == "" {
		return "", fmt.Errorf("entry file must be provided")
	}
	if len(roots) == 0 {
		return "", fmt.Errorf("no import root given")
	}
	if !filepath.IsAbs(entry) && CheckFileExists(filepath.Join(roots[0], entry)) {
		return filepath.ToSlash(filepath.Clean(entry)), nil
	}
	abs, err := MustAbs(entry)
	if err != nil {
		return "", err
	}
	if rel := RelToAny(abs, roots); rel != "" {
		return rel, nil
	}
	if filepath.IsAbs(entry) {
		return "", fmt.Errorf("%q is not under any import root %v", entry, roots)
	}
	return filepath.ToSlash(filepath.Clean(entry)), nil
}
