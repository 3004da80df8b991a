//go:build zelle_nodebug

package zelle

// borrowLocations records nothing in this build. Borrow errors still carry
// the correct kind, just no call sites.
type borrowLocations struct{}

func (borrowLocations) push(int) {}

func (borrowLocations) pop() {}

func (borrowLocations) active() []Location { return nil }

func attemptLocation(int) Location { return Location{} }
