package pipelinearchive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/pipelinearchive/cache"
	"github.com/gogpu/pipelinearchive/vkinfo"
)

// DirectoryResolver answers Resolve by reading "<dir>/<HEX16>.json",
// the layout a Recorder's SerializationPath writes to. Reads are cached
// in a sharded LRU so a replay walk that touches the same base pipeline
// or shared layout archive repeatedly doesn't keep re-reading disk.
type DirectoryResolver struct {
	dir   string
	cache *cache.ShardedCache[vkinfo.Fingerprint, []byte]
}

// NewDirectoryResolver builds a Resolver rooted at dir.
func NewDirectoryResolver(dir string) *DirectoryResolver {
	return &DirectoryResolver{
		dir: dir,
		cache: cache.NewSharded[vkinfo.Fingerprint, []byte](cache.DefaultCapacity, func(fp vkinfo.Fingerprint) uint64 {
			return uint64(fp)
		}),
	}
}

// Resolve reads the archive for fp, returning nil if it does not exist
// on disk. A successful read is cached for subsequent lookups.
func (d *DirectoryResolver) Resolve(fp vkinfo.Fingerprint) []byte {
	if data, ok := d.cache.Get(fp); ok {
		return data
	}
	path := filepath.Join(d.dir, fmt.Sprintf("%016X.json", uint64(fp)))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	d.cache.Set(fp, data)
	return data
}
