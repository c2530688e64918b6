package flatten

import "strings"

// excluded reports whether a traversal entry should be dropped. For a
// directory this means the whole subtree is pruned. Hidden directories are
// pruned except .github, which carries CI configuration worth keeping.
// Extension and content filtering happen later, in the writer.
func excluded(name string, isDir bool) bool {
	if isDir {
		if strings.HasPrefix(name, ".") && len(name) > 1 && name != ".github" {
			return true
		}
		if _, ok := ignoredDirs()[name]; ok {
			return true
		}
		return false
	}

	_, ok := ignoredFilenames()[strings.ToLower(name)]
	return ok
}
