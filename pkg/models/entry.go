package models

import (
	"sort"
)

// Side identifies which tree a path belongs to
type Side string

const (
	// SideLeft is the candidate tree (dir1)
	SideLeft Side = "left"
	// SideRight is the baseline tree (dir2)
	SideRight Side = "right"
)

// FileIndex maps a forward-slash relative path to the absolute path of a
// regular file under one tree root. It is built once per tree and never
// mutated afterwards.
type FileIndex map[string]string

// Has reports whether the relative path is indexed
func (idx FileIndex) Has(relPath string) bool {
	_, ok := idx[relPath]
	return ok
}

// SortedPaths returns the indexed relative paths in lexical order
func (idx FileIndex) SortedPaths() []string {
	paths := make([]string, 0, len(idx))
	for p := range idx {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Partition splits the paths of idx against other into paths present
// only in idx and paths present in both. Both slices are sorted.
func (idx FileIndex) Partition(other FileIndex) (only, common []string) {
	for _, p := range idx.SortedPaths() {
		if other.Has(p) {
			common = append(common, p)
		} else {
			only = append(only, p)
		}
	}
	return only, common
}
