package record

import "path/filepath"

// OrphanSet is the ordered set of previously recorded destinations that
// the current run has not claimed yet. It implements actions.Claimer.
type OrphanSet struct {
	paths []string
	index map[string]struct{}
}

// NewOrphanSet builds a set from recorded paths, dropping duplicates
func NewOrphanSet(paths []string) *OrphanSet {
	s := &OrphanSet{index: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		p = filepath.Clean(p)
		if _, ok := s.index[p]; ok {
			continue
		}
		s.index[p] = struct{}{}
		s.paths = append(s.paths, p)
	}
	return s
}

// Claim removes path from the set. Claiming an absent path is a no-op.
func (s *OrphanSet) Claim(path string) {
	path = filepath.Clean(path)
	if _, ok := s.index[path]; !ok {
		return
	}
	delete(s.index, path)
	for i, p := range s.paths {
		if p == path {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			break
		}
	}
}

// Contains reports whether path is still unclaimed
func (s *OrphanSet) Contains(path string) bool {
	_, ok := s.index[filepath.Clean(path)]
	return ok
}

// Remaining returns the unclaimed paths in record order
func (s *OrphanSet) Remaining() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Len returns the number of unclaimed paths
func (s *OrphanSet) Len() int {
	return len(s.paths)
}
