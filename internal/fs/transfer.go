package fs

import (
	"io"
	"os"
	"path/filepath"
)

// ConflictPolicy decides what happens when a moved entry already exists
// at the destination.
type ConflictPolicy string

const (
	ConflictOverwrite ConflictPolicy = "overwrite"
	ConflictSkip      ConflictPolicy = "skip"
	ConflictError     ConflictPolicy = "error"
)

// TransferStats summarizes a completed transfer.
type TransferStats struct {
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
}

// Transfer moves the filtered top-level entries of srcPath, with their full
// subtrees, into dstPath. Same-volume entries move via a single rename;
// otherwise via copy-then-delete, removing any partially copied entry before
// the error surfaces. Entries moved before a failure stay moved; entries not
// yet processed stay untouched.
func Transfer(srcPath, dstPath string, filter Filter, policy ConflictPolicy) (TransferStats, error) {
	var stats TransferStats
	if policy == "" {
		policy = ConflictOverwrite
	}

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return stats, NewError(KindNotFound, "transfer", srcPath, err)
	}
	if !srcInfo.IsDir() {
		return stats, NewError(KindInvalidPath, "transfer", srcPath, nil)
	}

	if err := os.MkdirAll(dstPath, 0o755); err != nil {
		return stats, NewError(KindIO, "transfer", dstPath, err)
	}

	entries, err := os.ReadDir(srcPath)
	if err != nil {
		return stats, NewError(KindIO, "transfer", srcPath, err)
	}

	for _, entry := range entries {
		if !filter.Match(entry.Name()) {
			continue
		}

		from := filepath.Join(srcPath, entry.Name())
		to := filepath.Join(dstPath, entry.Name())

		if _, err := os.Lstat(to); err == nil {
			switch policy {
			case ConflictSkip:
				stats.Skipped++
				continue
			case ConflictError:
				return stats, NewError(KindIO, "transfer", to, os.ErrExist)
			default:
				if err := os.RemoveAll(to); err != nil {
					return stats, NewError(KindIO, "transfer", to, err)
				}
			}
		}

		if err := moveEntry(from, to); err != nil {
			return stats, err
		}
		stats.Moved++
	}

	return stats, nil
}

// moveEntry renames when the volumes match, falling back to a deep copy
// plus source removal across devices.
func moveEntry(from, to string) error {
	if err := os.Rename(from, to); err == nil {
		return nil
	}

	if err := copyTree(from, to); err != nil {
		os.RemoveAll(to)
		return err
	}
	if err := os.RemoveAll(from); err != nil {
		return NewError(KindIO, "transfer", from, err)
	}
	return nil
}

// copyItem pairs a source path with its destination during a deep copy.
type copyItem struct {
	src string
	dst string
}

// copyTree copies a file, symlink, or directory tree using an explicit
// stack. Modes are preserved; symlinks are recreated, not followed.
func copyTree(from, to string) error {
	stack := []copyItem{{src: from, dst: to}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Lstat(item.src)
		if err != nil {
			return NewError(KindIO, "transfer", item.src, err)
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(item.src)
			if err != nil {
				return NewError(KindIO, "transfer", item.src, err)
			}
			if err := os.Symlink(link, item.dst); err != nil {
				return NewError(KindIO, "transfer", item.dst, err)
			}
		case info.IsDir():
			if err := os.MkdirAll(item.dst, info.Mode().Perm()); err != nil {
				return NewError(KindIO, "transfer", item.dst, err)
			}
			entries, err := os.ReadDir(item.src)
			if err != nil {
				return NewError(KindIO, "transfer", item.src, err)
			}
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, copyItem{
					src: filepath.Join(item.src, entries[i].Name()),
					dst: filepath.Join(item.dst, entries[i].Name()),
				})
			}
		default:
			if err := copyFile(item.src, item.dst, info.Mode().Perm()); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(from, to string, mode os.FileMode) error {
	in, err := os.Open(from)
	if err != nil {
		return NewError(KindIO, "transfer", from, err)
	}
	defer in.Close()

	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return NewError(KindIO, "transfer", to, err)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewError(KindIO, "transfer", to, err)
	}
	return nil
}
