package flatten

import "sync"

// The denylist tables are built once on first use and never mutated. The
// classifier matches directory names case-sensitively; file names and
// extensions are lowercased before lookup.

// ignoredDirs returns the set of directory names pruned during traversal:
// VCS metadata, IDE settings, dependency caches and build output.
var ignoredDirs = sync.OnceValue(func() map[string]struct{} {
	return stringSet(
		".git", ".idea", ".vscode", ".vs", "__pycache__", "node_modules",
		"venv", ".venv", "env", "dist", "build", "target", "out",
		"bin", "obj", "debug", "release",
		".gradle", "captures", "gradle", ".DS_Store", "coverage", ".next", ".nuxt",
	)
})

// ignoredFilenames returns the set of lowercase file names to skip:
// build-tool wrapper scripts and lockfiles.
var ignoredFilenames = sync.OnceValue(func() map[string]struct{} {
	return stringSet(
		"gradlew", "gradlew.bat", "mvnw", "mvnw.cmd",
		"local.properties", "thumbs.db", "desktop.ini",
		"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "cargo.lock", "poetry.lock",
	)
})

// ignoredExtensions returns the set of lowercase extensions (leading dot
// included) to skip: media, binaries, archives, compiled artifacts,
// databases, logs, and Markdown (which would otherwise pull in docs or a
// previous run's output).
var ignoredExtensions = sync.OnceValue(func() map[string]struct{} {
	return stringSet(
		// media
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg", ".webp", ".tiff",
		".mp3", ".mp4", ".wav", ".avi", ".mov",
		// binaries and archives
		".exe", ".dll", ".so", ".dylib", ".bin", ".apk", ".aab", ".jar", ".war",
		".zip", ".tar", ".gz", ".7z", ".rar", ".iso", ".cab",
		// compiled intermediates and local state
		".pyc", ".class", ".o", ".obj", ".pdb", ".suo",
		".db", ".sqlite", ".sqlite3", ".lock", ".log",
		".md",
	)
})

func stringSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
