// Package mapsource acquires layout text from disk or from the embedded
// sample maps. It is the only place in the pipeline that can fail; the
// resolver itself always succeeds.
package mapsource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/samdwyer/dungeontiles/data"
)

// EmbedPrefix selects an embedded map in Open, e.g. "embed:crypt".
const EmbedPrefix = "embed:"

// ErrSourceUnavailable is returned when layout text cannot be read.
var ErrSourceUnavailable = errors.New("source text unavailable")

// ReadFile returns the text of the layout at filename.
func ReadFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, filename, err)
	}
	return string(content), nil
}

// Embedded returns the text of an embedded sample map. The name may omit
// the .txt extension.
func Embedded(name string) (string, error) {
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	content, err := fs.ReadFile(data.FS(), path.Join("maps", name))
	if err != nil {
		return "", fmt.Errorf("%w: embedded map %s: %w", ErrSourceUnavailable, name, err)
	}
	return string(content), nil
}

// EmbeddedNames lists the embedded sample maps in alphabetical order,
// without extensions.
func EmbeddedNames() ([]string, error) {
	entries, err := fs.ReadDir(data.FS(), "maps")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded maps: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

// Open resolves a map reference: "embed:<name>" reads an embedded map,
// anything else is treated as a file path.
func Open(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: no map given", ErrSourceUnavailable)
	}
	if name, ok := strings.CutPrefix(ref, EmbedPrefix); ok {
		return Embedded(name)
	}
	return ReadFile(ref)
}
