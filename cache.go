package xdgentries

import (
	"os"
	"sync"
	"time"
)

type cachedFile struct {
	file     *DesktopFile
	mtime    time.Time
	lastStat time.Time
}

// Loader parses desktop entry files and caches the result per path.
// Cached entries are revalidated against the file's mtime, with stat
// calls rate-limited to statInterval.
type Loader struct {
	decoder      Decoder
	statInterval time.Duration

	mu    sync.RWMutex
	cache map[string]*cachedFile
}

// NewLoader returns a Loader using a zero-value (permissive) Decoder.
func NewLoader() *Loader {
	return NewLoaderWithDecoder(Decoder{})
}

// NewLoaderWithDecoder returns a Loader that parses with d.
func NewLoaderWithDecoder(d Decoder) *Loader {
	return &Loader{
		decoder:      d,
		statInterval: 5 * time.Second,
		cache:        make(map[string]*cachedFile),
	}
}

// Load returns the parsed desktop entry file at path, reparsing only
// when the file's mtime has changed since the cached parse.
//
// Published cache entries are never mutated; refreshing the stat
// window replaces the map entry with a fresh one, so concurrent loads
// only ever read a snapshot.
func (l *Loader) Load(path string) (*DesktopFile, error) {
	l.mu.RLock()
	entry, exists := l.cache[path]
	var cached cachedFile
	if exists {
		cached = *entry
	}
	l.mu.RUnlock()

	now := time.Now()
	if exists && now.Sub(cached.lastStat) < l.statInterval {
		return cached.file, nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		l.mu.Lock()
		delete(l.cache, path)
		l.mu.Unlock()
		return nil, err
	}

	if exists && stat.ModTime().Equal(cached.mtime) {
		l.mu.Lock()
		l.cache[path] = &cachedFile{
			file:     cached.file,
			mtime:    cached.mtime,
			lastStat: now,
		}
		l.mu.Unlock()
		return cached.file, nil
	}

	file, err := l.decoder.Load(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = &cachedFile{
		file:     file,
		mtime:    stat.ModTime(),
		lastStat: now,
	}
	l.mu.Unlock()

	return file, nil
}
