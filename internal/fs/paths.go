package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether the path resolves to an existing file, directory,
// or symlink target. Never fails: any resolution error yields false.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether the path is an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether the path itself is a symbolic link.
// The link is not followed for this classification.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// IsAbsolute reports the lexical absoluteness of the path string.
func IsAbsolute(path string) bool {
	return filepath.IsAbs(path)
}

// IsRelative is the complement of IsAbsolute.
func IsRelative(path string) bool {
	return !filepath.IsAbs(path)
}

// FullName returns the base component of the path verbatim, extension included.
func FullName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}
	return base
}

// Name returns the base component with a single trailing extension removed
// for files. Directories keep their full base component.
func Name(path string) string {
	full := FullName(path)
	if IsDir(path) {
		return full
	}
	return stem(full)
}

// Extname returns the substring after the last dot in the base component,
// or "" when there is none. A lone leading dot (hidden files) does not
// start an extension.
func Extname(path string) string {
	full := FullName(path)
	idx := strings.LastIndex(full, ".")
	if idx <= 0 {
		return ""
	}
	return full[idx+1:]
}

// ParentName returns the base component of the level-th ancestor directory.
// Level 1 is the immediate parent. Climbing above the filesystem root fails
// with InvalidPath.
func ParentName(path string, level int) (string, error) {
	if level < 1 {
		return "", NewError(KindInvalidPath, "parent_name", path, nil)
	}

	p := filepath.Clean(path)
	if !filepath.IsAbs(p) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", NewError(KindInvalidPath, "parent_name", path, err)
		}
		p = abs
	}

	for i := 0; i < level; i++ {
		parent := filepath.Dir(p)
		if parent == p {
			return "", NewError(KindInvalidPath, "parent_name", path, nil)
		}
		p = parent
	}

	return FullName(p), nil
}

// stem strips the last extension from a base name. A name whose only dot
// leads (".bashrc") is returned whole.
func stem(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name
	}
	return name[:idx]
}
