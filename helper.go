package zelle

// ReadE takes a shared borrow of the cell, executes f, then releases the borrow.
// Returns the result of f and any error.
func ReadE[T, R any](c *Cell[T], f func(T) (R, error)) (R, error) {
	r := c.Borrow()
	defer r.Release()
	return f(r.Get())
}

// Read takes a shared borrow of the cell, executes f, then releases the borrow.
// Returns the result of f.
func Read[T, R any](c *Cell[T], f func(T) R) R {
	r := c.Borrow()
	defer r.Release()
	return f(r.Get())
}

// WriteE takes the exclusive borrow of the cell, executes f with a pointer to
// the value, then releases the borrow. Returns the result of f and any error.
// The pointer must not be retained past the call.
func WriteE[T, R any](c *Cell[T], f func(*T) (R, error)) (R, error) {
	w := c.BorrowMut()
	defer w.Release()
	return f(w.value)
}

// Write takes the exclusive borrow of the cell, executes f with a pointer to
// the value, then releases the borrow. Returns the result of f.
// The pointer must not be retained past the call.
func Write[T, R any](c *Cell[T], f func(*T) R) R {
	w := c.BorrowMut()
	defer w.Release()
	return f(w.value)
}
