package zelle

// Cell is a container enforcing the borrow rules at run time: any number of
// shared borrows, or exactly one exclusive borrow, never both. The wrapped
// value is reachable only through an active Ref or RefMut.
//
// A Cell is not safe for concurrent use. It may be handed from one
// goroutine to another while unborrowed, but concurrent access requires an
// external mutex.
type Cell[T any] struct {
	borrow borrowFlag
	value  T
}

// New returns a Cell containing value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Zero returns a Cell containing the zero value of T.
func Zero[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Borrow takes a shared borrow of the wrapped value.
//
// The borrow lasts until the returned Ref is released. Multiple shared
// borrows can be taken out at the same time.
//
// Panics if the value is currently mutably borrowed. The panic value is the
// *BorrowError that TryBorrow would have returned.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.tryBorrow(1)
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrow is Borrow with a recoverable failure: if the value is currently
// mutably borrowed it returns a *BorrowError instead of panicking. A failed
// attempt does not change the borrow state.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	r, err := c.tryBorrow(1)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Cell[T]) tryBorrow(skip int) (*Ref[T], *BorrowError) {
	if !c.borrow.tryShared(skip + 1) {
		return nil, &BorrowError{
			Attempt: attemptLocation(skip + 1),
			Active:  c.borrow.locations.active(),
		}
	}
	return &Ref[T]{value: &c.value, flag: &c.borrow}, nil
}

// BorrowMut takes the exclusive borrow of the wrapped value.
//
// The borrow lasts until the returned RefMut is released. No other borrow
// can be taken out while it is active.
//
// Panics if the value is currently borrowed. The panic value is the
// *BorrowMutError that TryBorrowMut would have returned.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	w, err := c.tryBorrowMut(1)
	if err != nil {
		panic(err)
	}
	return w
}

// TryBorrowMut is BorrowMut with a recoverable failure: if the value is
// currently borrowed it returns a *BorrowMutError instead of panicking.
// A failed attempt does not change the borrow state.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	w, err := c.tryBorrowMut(1)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (c *Cell[T]) tryBorrowMut(skip int) (*RefMut[T], *BorrowMutError) {
	if !c.borrow.tryExclusive(skip + 1) {
		return nil, &BorrowMutError{
			Attempt: attemptLocation(skip + 1),
			Active:  c.borrow.locations.active(),
		}
	}
	return &RefMut[T]{value: &c.value, flag: &c.borrow}, nil
}

// State reports the current borrow state of the cell.
func (c *Cell[T]) State() BorrowState {
	return c.borrow.state()
}

// IntoInner returns the wrapped value. The cell must not be used afterwards.
//
// Panics if any borrow is active: a guard outliving its cell is a bug the
// caller's scoping should have made impossible.
func (c *Cell[T]) IntoInner() T {
	if c.borrow.flag != unused {
		panic("zelle: IntoInner with active borrows")
	}
	return c.value
}

// Clone returns a new unborrowed Cell containing a shallow copy of the
// current value, read under a momentary shared borrow.
//
// Panics if the value is currently mutably borrowed.
func (c *Cell[T]) Clone() *Cell[T] {
	r, err := c.tryBorrow(1)
	if err != nil {
		panic(err)
	}
	defer r.Release()
	return New(r.Get())
}

// Equal reports whether two cells contain equal values, each read under a
// momentary shared borrow.
//
// Panics if either value is currently mutably borrowed.
func Equal[T comparable](a, b *Cell[T]) bool {
	ra, err := a.tryBorrow(1)
	if err != nil {
		panic(err)
	}
	defer ra.Release()
	rb, err := b.tryBorrow(1)
	if err != nil {
		panic(err)
	}
	defer rb.Release()
	return ra.Get() == rb.Get()
}
