package denseset

import "fmt"

// CheckInvariant verifies that the buffer is strictly ordered under the
// comparator and returns a descriptive error for the first violation. It is
// an opt-in debugging aid for callers who suspect their comparator is not a
// strict weak ordering; no Set operation calls it implicitly, so release-mode
// performance is unaffected.
func (s *Set[T]) CheckInvariant() error {
	if s.compare == nil {
		if len(s.buf) != 0 {
			return fmt.Errorf("denseset: %d elements but nil comparator", len(s.buf))
		}
		return nil
	}
	for i := 1; i < len(s.buf); i++ {
		if s.compare(s.buf[i-1], s.buf[i]) >= 0 {
			return fmt.Errorf("denseset: elements at positions %d and %d are not strictly ordered", i-1, i)
		}
	}
	return nil
}
