// Package data provides the sample dungeon layouts shipped with the binary.
package data

import "embed"

// mapsFS embeds every layout under maps/ at build time.
//
//go:embed maps/*.txt
var mapsFS embed.FS

// FS returns the embedded filesystem containing the sample layouts.
func FS() embed.FS {
	return mapsFS
}
