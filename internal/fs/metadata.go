package fs

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"
)

// Metadata is the aggregated descriptive record for a path. JSON field
// names follow the wire convention of the command boundary.
type Metadata struct {
	Size       uint64 `json:"size"`
	Name       string `json:"name"`
	Extname    string `json:"extname"`
	FullName   string `json:"fullName"`
	ParentName string `json:"parentName"`
	IsExist    bool   `json:"isExist"`
	IsFile     bool   `json:"isFile"`
	IsDir      bool   `json:"isDir"`
	IsSymlink  bool   `json:"isSymlink"`
	IsAbsolute bool   `json:"isAbsolute"`
	IsRelative bool   `json:"isRelative"`
	AccessedAt uint64 `json:"accessedAt"`
	CreatedAt  uint64 `json:"createdAt"`
	ModifiedAt uint64 `json:"modifiedAt"`
}

// MetadataOptions tunes metadata assembly.
type MetadataOptions struct {
	// OmitSize skips the recursive size walk and reports 0 instead.
	// Escape hatch for large trees where the byte count is not needed.
	OmitSize bool `json:"omitSize"`
}

// Size returns the total byte count reachable from path, or 0 when the
// path does not exist. Files report their byte length; directories the
// sum over all descendant regular files. Symlinked subtrees are not
// descended into, and unreadable descendants contribute 0 rather than
// aborting the walk.
func Size(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return uint64(info.Size())
	}

	var total int64
	conf := fastwalk.Config{Follow: false}
	fastwalk.Walk(&conf, path, func(p string, d os.DirEntry, err error) error {
		if err != nil || d == nil || !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		atomic.AddInt64(&total, fi.Size())
		return nil
	})

	return uint64(total)
}

// Stat assembles the full Metadata record for a path. A missing path
// yields a zeroed record with only the lexical fields populated.
func Stat(path string, opts MetadataOptions) Metadata {
	meta := Metadata{
		Name:       Name(path),
		Extname:    Extname(path),
		FullName:   FullName(path),
		IsAbsolute: IsAbsolute(path),
		IsRelative: IsRelative(path),
	}
	if parent, err := ParentName(path, 1); err == nil {
		meta.ParentName = parent
	}

	info, err := os.Stat(path)
	if err != nil {
		return meta
	}

	meta.IsExist = true
	meta.IsDir = info.IsDir()
	meta.IsFile = info.Mode().IsRegular()
	meta.IsSymlink = IsSymlink(path)
	if !opts.OmitSize {
		meta.Size = Size(path)
	}
	meta.AccessedAt, meta.CreatedAt, meta.ModifiedAt = statTimes(info)

	return meta
}

func unixMillis(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
