package fs

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ArchiveStats summarizes a completed archive operation.
type ArchiveStats struct {
	Entries int   `json:"entries"`
	Bytes   int64 `json:"bytes"`
}

// Compress serializes srcPath into a gzip-compressed tar stream at dstPath.
// A file source becomes a single entry; a directory source contributes its
// immediate children filtered by top-level name, each with its full subtree.
// Symlinks are stored as link entries and never dereferenced. The archive is
// written to a temporary file and renamed into place only on full success.
func Compress(srcPath, dstPath string, filter Filter) (ArchiveStats, error) {
	var stats ArchiveStats

	srcInfo, err := os.Lstat(srcPath)
	if err != nil {
		return stats, NewError(KindNotFound, "compress", srcPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return stats, NewError(KindIO, "compress", dstPath, err)
	}

	tmpPath := dstPath + "." + uuid.NewString() + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return stats, NewError(KindIO, "compress", dstPath, err)
	}

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	fail := func(path string, cause error) (ArchiveStats, error) {
		tw.Close()
		gz.Close()
		out.Close()
		os.Remove(tmpPath)
		return stats, NewError(KindIO, "compress", path, cause)
	}

	if srcInfo.IsDir() {
		entries, err := os.ReadDir(srcPath)
		if err != nil {
			return fail(srcPath, err)
		}
		for _, entry := range entries {
			if !filter.Match(entry.Name()) {
				continue
			}
			if err := appendTree(tw, filepath.Join(srcPath, entry.Name()), entry.Name(), &stats); err != nil {
				return fail(srcPath, err)
			}
		}
	} else {
		if err := appendTree(tw, srcPath, FullName(srcPath), &stats); err != nil {
			return fail(srcPath, err)
		}
	}

	if err := tw.Close(); err != nil {
		gz.Close()
		out.Close()
		os.Remove(tmpPath)
		return stats, NewError(KindIO, "compress", dstPath, err)
	}
	if err := gz.Close(); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return stats, NewError(KindIO, "compress", dstPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return stats, NewError(KindIO, "compress", dstPath, err)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		os.Remove(tmpPath)
		return stats, NewError(KindIO, "compress", dstPath, err)
	}
	return stats, nil
}

// workItem pairs an absolute path with its relative name inside the archive.
type workItem struct {
	path string
	name string
}

// appendTree writes one entry and its subtree to the tar stream using an
// explicit stack, bounding stack usage on deep trees.
func appendTree(tw *tar.Writer, root, rootName string, stats *ArchiveStats) error {
	stack := []workItem{{path: root, name: rootName}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Lstat(item.path)
		if err != nil {
			return err
		}

		link := ""
		if info.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(item.path); err != nil {
				return err
			}
		}

		header, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(item.name)
		if info.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		stats.Entries++

		switch {
		case info.IsDir():
			entries, err := os.ReadDir(item.path)
			if err != nil {
				return err
			}
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, workItem{
					path: filepath.Join(item.path, entries[i].Name()),
					name: item.name + "/" + entries[i].Name(),
				})
			}
		case info.Mode().IsRegular():
			file, err := os.Open(item.path)
			if err != nil {
				return err
			}
			written, err := io.Copy(tw, file)
			file.Close()
			if err != nil {
				return err
			}
			stats.Bytes += written
		}
	}

	return nil
}

// Decompress reads srcPath as a compressed tar stream and reconstructs each
// entry under dstPath, creating parent directories as needed. An entry whose
// normalized path would resolve outside dstPath fails the whole operation
// with PathTraversal before anything belonging to that entry is written.
// Entries extracted before the offending one are not rolled back.
func Decompress(srcPath, dstPath string) (ArchiveStats, error) {
	var stats ArchiveStats

	in, err := os.Open(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, NewError(KindNotFound, "decompress", srcPath, err)
		}
		return stats, NewError(KindIO, "decompress", srcPath, err)
	}
	defer in.Close()

	var tr *tar.Reader
	switch {
	case strings.HasSuffix(srcPath, ".zst"):
		zr, err := zstd.NewReader(in)
		if err != nil {
			return stats, NewError(KindIO, "decompress", srcPath, err)
		}
		defer zr.Close()
		tr = tar.NewReader(zr)
	case strings.HasSuffix(srcPath, ".tar"):
		tr = tar.NewReader(in)
	default:
		gzr, err := gzip.NewReader(in)
		if err != nil {
			return stats, NewError(KindIO, "decompress", srcPath, err)
		}
		defer gzr.Close()
		tr = tar.NewReader(gzr)
	}

	if err := os.MkdirAll(dstPath, 0o755); err != nil {
		return stats, NewError(KindIO, "decompress", dstPath, err)
	}
	root := filepath.Clean(dstPath)
	rootReal, err := filepath.EvalSymlinks(root)
	if err != nil {
		return stats, NewError(KindIO, "decompress", dstPath, err)
	}

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, NewError(KindIO, "decompress", srcPath, err)
		}

		target, err := secureJoin(root, header.Name)
		if err != nil {
			return stats, err
		}
		// secureJoin is lexical; a symlink extracted earlier could still
		// redirect an ancestor outside the root, so resolve the parent too.
		if err := parentInsideRoot(rootReal, target, header.Name); err != nil {
			return stats, err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode).Perm()|0o700); err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
			// Never write through a symlink left at the target by an
			// earlier entry.
			if fi, err := os.Lstat(target); err == nil && fi.Mode()&os.ModeSymlink != 0 {
				os.Remove(target)
			}
			out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(header.Mode).Perm())
			if err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
			written, err := io.Copy(out, tr)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
			stats.Bytes += written
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
			os.Remove(target)
			if err := os.Symlink(header.Linkname, target); err != nil {
				return stats, NewError(KindIO, "decompress", target, err)
			}
		default:
			continue
		}
		stats.Entries++
	}

	return stats, nil
}

// secureJoin resolves an archive entry name under root, rejecting absolute
// names and any normalized path escaping the extraction root.
func secureJoin(root, name string) (string, error) {
	clean := filepath.FromSlash(name)
	if filepath.IsAbs(clean) {
		return "", NewError(KindPathTraversal, "decompress", name, nil)
	}
	target := filepath.Join(root, clean)
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", NewError(KindPathTraversal, "decompress", name, nil)
	}
	return target, nil
}

// parentInsideRoot resolves the deepest existing ancestor of target and
// rejects the entry with PathTraversal if that ancestor lives outside the
// resolved extraction root. Missing components are fine: MkdirAll creates
// them fresh, so they cannot be symlinks.
func parentInsideRoot(rootReal, target, name string) error {
	dir := filepath.Dir(target)
	for {
		real, err := filepath.EvalSymlinks(dir)
		if err == nil {
			if real != rootReal && !strings.HasPrefix(real, rootReal+string(os.PathSeparator)) {
				return NewError(KindPathTraversal, "decompress", name, nil)
			}
			return nil
		}
		if !os.IsNotExist(err) {
			return NewError(KindIO, "decompress", dir, err)
		}
		dir = filepath.Dir(dir)
	}
}
