//go:build !zelle_nodebug

package zelle

import "slices"

// borrowLocations holds one Location per currently active borrow, in
// creation order. Entries are popped newest-first on release: guards
// normally go out of scope in reverse creation order, so the popped entry
// belongs to the released guard. A guard deliberately kept alive past its
// siblings can misattribute locations; the borrow flag itself stays correct.
//
// Building with -tags zelle_nodebug replaces this with a no-op
// implementation that records nothing.
type borrowLocations struct {
	list []Location
}

func (b *borrowLocations) push(skip int) {
	var loc Location
	if probe != nil {
		if l, ok := probe.Capture(skip + 1); ok {
			loc = l
		}
	}
	b.list = append(b.list, loc)
}

func (b *borrowLocations) pop() {
	b.list = b.list[:len(b.list)-1]
}

// active returns a snapshot of the locations of all active borrows.
func (b *borrowLocations) active() []Location {
	if len(b.list) == 0 {
		return nil
	}
	return slices.Clone(b.list)
}

// attemptLocation resolves the call site of a failed borrow attempt,
// skip frames above the caller of attemptLocation.
func attemptLocation(skip int) Location {
	if probe == nil {
		return Location{}
	}
	loc, _ := probe.Capture(skip + 1)
	return loc
}
