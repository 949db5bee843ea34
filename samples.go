package main

import (
	"fmt"
	"os"
	"sort"
)

// ListSamples returns the names of the regular files in dir, sorted.
func ListSamples(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sample directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}
