package zelle

// Borrow flag values. Everything between unused and writing counts active
// shared borrows; the count will not outgrow its range since uint is the
// size of the address space.
const (
	unused  uint = 0
	writing uint = ^uint(0)
)

// BorrowState describes the borrow state of a Cell at one point in time.
type BorrowState int

const (
	// StateUnused means there are no outstanding borrows on the cell.
	StateUnused BorrowState = iota
	// StateReading means the cell is being read, there is at least one active Ref.
	StateReading
	// StateWriting means the cell is being written to, there is an active RefMut.
	StateWriting
)

func (s BorrowState) String() string {
	switch s {
	case StateUnused:
		return "unused"
	case StateReading:
		return "reading"
	case StateWriting:
		return "writing"
	default:
		return "invalid"
	}
}

// borrowFlag tracks the outstanding borrows of a single cell.
// It is mutated only by guard construction and release, never directly
// by the cell's consumer.
type borrowFlag struct {
	flag      uint
	locations borrowLocations
}

func (b *borrowFlag) state() BorrowState {
	switch b.flag {
	case unused:
		return StateUnused
	case writing:
		return StateWriting
	default:
		return StateReading
	}
}

// tryShared attempts the transition to one more active reader.
// It fails without changing state while a writer is active.
func (b *borrowFlag) tryShared(skip int) bool {
	if b.flag == writing {
		return false
	}
	b.flag++
	b.locations.push(skip + 1)
	return true
}

// tryExclusive attempts the transition to the single active writer.
// It fails without changing state unless the flag is unused.
func (b *borrowFlag) tryExclusive(skip int) bool {
	if b.flag != unused {
		return false
	}
	b.flag = writing
	b.locations.push(skip + 1)
	return true
}

// releaseShared ends one shared borrow.
// Panics if no shared borrow is active; that means a guard and the flag
// have gone out of sync, which is not recoverable.
func (b *borrowFlag) releaseShared() {
	if b.flag == unused || b.flag == writing {
		panic("zelle: shared release without matching borrow")
	}
	b.flag--
	b.locations.pop()
}

// releaseExclusive ends the exclusive borrow.
// Panics if no exclusive borrow is active.
func (b *borrowFlag) releaseExclusive() {
	if b.flag != writing {
		panic("zelle: exclusive release without matching borrow")
	}
	b.flag = unused
	b.locations.pop()
}
