package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludedDirectories(t *testing.T) {
	tests := []struct {
		name    string
		dirName string
		want    bool
	}{
		{"plain source dir", "src", false},
		{"vcs metadata", ".git", true},
		{"hidden dir", ".cache", true},
		{"ci config exception", ".github", false},
		{"single dot is not hidden", ".", false},
		{"dependency cache", "node_modules", true},
		{"build output", "target", true},
		{"case sensitive denylist", "NODE_MODULES", false},
		{"gradle wrapper dir", "gradle", true},
		{"nested-looking name", "builds", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, excluded(tt.dirName, true))
		})
	}
}

func TestExcludedFiles(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"source file", "main.go", false},
		{"lockfile", "yarn.lock", true},
		{"lockfile mixed case", "Cargo.LOCK", true},
		{"wrapper script", "gradlew", true},
		{"hidden file is not pruned here", ".gitignore", false},
		{"extension handled later", "photo.PNG", false},
		{"no extension", "readme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, excluded(tt.fileName, false))
		})
	}
}
