package command

import (
	"os"
	"path/filepath"

	"github.com/franz/codec-toolbox/internal/util"
)

// Resolver caches a mapping from executable basename to absolute path,
// built by scanning a list of search directories once. Lookups after
// the scan are plain map reads.
type Resolver struct {
	dirs  []string
	cache map[string]string
}

// NewResolver creates a resolver over the runtime search path
func NewResolver() *Resolver {
	return NewResolverDirs(filepath.SplitList(os.Getenv("PATH")))
}

// NewResolverDirs creates a resolver over an explicit directory list.
// Earlier directories win, matching PATH semantics.
func NewResolverDirs(dirs []string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Refresh rescans the search directories and rebuilds the cache.
// The new mapping replaces the old one in a single assignment, so a
// reader never sees a partially built map. Unreadable directories are
// skipped, not fatal.
func (r *Resolver) Refresh() {
	cache := make(map[string]string)

	for _, dir := range r.dirs {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			util.DebugLog("skipping unreadable search path entry %s: %v", dir, err)
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if _, seen := cache[name]; seen {
				continue
			}
			path := filepath.Join(dir, name)
			if isExecutable(path) {
				cache[name] = path
			}
		}
	}

	r.cache = cache
}

// Resolve returns the absolute path of an executable basename, or
// false if it is not on the search path. The first call triggers the
// initial scan.
func (r *Resolver) Resolve(name string) (string, bool) {
	if r.cache == nil {
		r.Refresh()
	}
	path, ok := r.cache[name]
	return path, ok
}

// isExecutable reports whether path is a regular file with an
// executable bit set. Symlinks are followed.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
