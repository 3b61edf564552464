package ffprobe

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestPlaceholderDecodesBundledSample(t *testing.T) {
	metadata, ok := Placeholder()
	if !ok {
		t.Fatal("expected bundled sample to decode")
	}
	if metadata.Format.FileName == "" {
		t.Fatal("expected sample file name")
	}
	if len(metadata.Streams) != 4 {
		t.Fatalf("expected 4 sample streams, got %d", len(metadata.Streams))
	}
	again, ok := Placeholder()
	if !ok || !again.Equal(metadata) {
		t.Fatal("expected memoized placeholder")
	}
}

func TestLoadPlaceholderMissingResource(t *testing.T) {
	if _, ok := LoadPlaceholder(FSLoader{FS: fstest.MapFS{}}); ok {
		t.Fatal("expected missing resource to yield no value")
	}
	if _, ok := LoadPlaceholder(nil); ok {
		t.Fatal("expected nil loader to yield no value")
	}
}

func TestLoadPlaceholderUndecodableResource(t *testing.T) {
	fsys := fstest.MapFS{SampleName: {Data: []byte(`{"streams": []}`)}}
	if _, ok := LoadPlaceholder(FSLoader{FS: fsys}); ok {
		t.Fatal("expected undecodable resource to yield no value")
	}
}

type failingLoader struct{}

func (failingLoader) Load(string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoadPlaceholderLoaderError(t *testing.T) {
	if _, ok := LoadPlaceholder(failingLoader{}); ok {
		t.Fatal("expected loader error to yield no value")
	}
}

func TestLoadPlaceholderFromDirectory(t *testing.T) {
	fsys := fstest.MapFS{SampleName: {Data: []byte(`{"format": {"filename": "dir.mkv"}, "streams": []}`)}}
	metadata, ok := LoadPlaceholder(FSLoader{FS: fsys})
	if !ok {
		t.Fatal("expected sample to load")
	}
	if metadata.Format.FileName != "dir.mkv" {
		t.Fatalf("unexpected file name: %q", metadata.Format.FileName)
	}
}
