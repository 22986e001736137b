//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access, creation, and modification times in unix
// milliseconds. Linux exposes no birth time through stat(2); the inode
// change time is the documented substitute.
func statTimes(info os.FileInfo) (accessed, created, modified uint64) {
	modified = unixMillis(info.ModTime())

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return modified, modified, modified
	}

	accessed = unixMillis(time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)))
	created = unixMillis(time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)))
	return accessed, created, modified
}
