package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// ebmlMagic opens every Matroska and WebM file.
var ebmlMagic = []byte{0x1a, 0x45, 0xdf, 0xa3}

// WriteMediaFile creates a placeholder media file of size bytes at path,
// creating parent directories as needed. The file starts with the Matroska
// signature and is zero-padded; sizes smaller than the signature are raised
// to fit it.
func WriteMediaFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size < int64(len(ebmlMagic)) {
		size = int64(len(ebmlMagic))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	payload := append(bytes.Clone(ebmlMagic), make([]byte, size-int64(len(ebmlMagic)))...)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write media file %s: %v", path, err)
	}
}
