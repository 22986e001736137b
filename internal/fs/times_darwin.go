//go:build darwin

package fs

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access, creation, and modification times in unix
// milliseconds. Darwin reports the birth time via Birthtimespec; a zero
// value falls back to the modification time.
func statTimes(info os.FileInfo) (accessed, created, modified uint64) {
	modified = unixMillis(info.ModTime())

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return modified, modified, modified
	}

	accessed = unixMillis(time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec))
	if st.Birthtimespec.Sec != 0 {
		created = unixMillis(time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec))
	} else {
		created = modified
	}
	return accessed, created, modified
}
