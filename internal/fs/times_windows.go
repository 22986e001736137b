//go:build windows

package fs

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access, creation, and modification times in unix
// milliseconds from the Win32 file attribute data.
func statTimes(info os.FileInfo) (accessed, created, modified uint64) {
	modified = unixMillis(info.ModTime())

	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return modified, modified, modified
	}

	accessed = unixMillis(time.Unix(0, st.LastAccessTime.Nanoseconds()))
	created = unixMillis(time.Unix(0, st.CreationTime.Nanoseconds()))
	return accessed, created, modified
}
