package fs

// Filter selects top-level entries by exact name. Excludes always win;
// a non-empty include list admits only the named entries. The zero value
// admits everything. No glob or wildcard matching.
type Filter struct {
	Includes []string `json:"includes"`
	Excludes []string `json:"excludes"`
}

// Empty reports whether the filter admits all entries.
func (f Filter) Empty() bool {
	return len(f.Includes) == 0 && len(f.Excludes) == 0
}

// Match reports whether an entry with the given name participates.
func (f Filter) Match(name string) bool {
	for _, excluded := range f.Excludes {
		if name == excluded {
			return false
		}
	}
	if len(f.Includes) == 0 {
		return true
	}
	for _, included := range f.Includes {
		if name == included {
			return true
		}
	}
	return false
}
