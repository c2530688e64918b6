package flatten

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// sniffLen bounds how much of a file the text sniffer inspects.
const sniffLen = 1024

// isTextFile checks whether a file looks like text by reading its first
// kilobyte and looking for null bytes. Empty files count as text. Files that
// cannot be opened or read are reported as not text, so unreadable files
// drop out of the pipeline silently.
func isTextFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	if n == 0 {
		return true
	}

	return bytes.IndexByte(buffer[:n], 0) < 0
}
