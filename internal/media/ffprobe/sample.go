package ffprobe

import (
	"embed"
	"io/fs"
	"sync"
)

// SampleName is the file name of the debug sample resource.
const SampleName = "metadata.json"

//go:embed metadata.json
var bundled embed.FS

// ResourceLoader reads a named resource. It is the only file access the
// sample path performs.
type ResourceLoader interface {
	Load(name string) ([]byte, error)
}

// FSLoader loads resources from an fs.FS, such as os.DirFS or an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// Load implements ResourceLoader.
func (l FSLoader) Load(name string) ([]byte, error) {
	return fs.ReadFile(l.FS, name)
}

// BundledLoader returns a loader over the resources compiled into the binary.
func BundledLoader() ResourceLoader {
	return FSLoader{FS: bundled}
}

var placeholder = sync.OnceValues(func() (MediaMetadata, bool) {
	return LoadPlaceholder(BundledLoader())
})

// Placeholder returns the bundled sample metadata used by debug views. It is
// decoded once; ok is false when the sample is missing or does not decode.
func Placeholder() (MediaMetadata, bool) {
	return placeholder()
}

// LoadPlaceholder decodes SampleName from loader. The sample is plain
// ffprobe JSON and is not repaired. Failures report ok == false.
func LoadPlaceholder(loader ResourceLoader) (MediaMetadata, bool) {
	if loader == nil {
		return MediaMetadata{}, false
	}
	data, err := loader.Load(SampleName)
	if err != nil {
		return MediaMetadata{}, false
	}
	metadata, err := Decode(data)
	if err != nil {
		return MediaMetadata{}, false
	}
	return metadata, true
}
