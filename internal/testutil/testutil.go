// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
)

// FindTestData locates a testdata file by name.
// It searches in the testdata directory relative to the module root.
func FindTestData(name string) string {
	// Get the directory of this source file
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}

	// Navigate from internal/testutil to the module root
	moduleRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	// Primary location: testdata at the module root
	primary := filepath.Join(moduleRoot, "testdata", name)
	if _, err := os.Stat(primary); err == nil {
		return primary
	}

	// Fallback locations
	fallbacks := []string{
		filepath.Join(moduleRoot, "norm", "testdata", name),
		filepath.Join(moduleRoot, "ucd", "testdata", name),
	}

	for _, p := range fallbacks {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// MustFindTestData is like FindTestData but panics if the file is not found.
func MustFindTestData(name string) string {
	path := FindTestData(name)
	if path == "" {
		panic("testdata file not found: " + name)
	}
	return path
}
