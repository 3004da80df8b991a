package zelle

// noCopy flags accidental copies of a guard under `go vet -copylocks`.
// A copied guard would release the same borrow twice.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ref is a token for one shared borrow of a Cell.
//
// A Ref must be released exactly once, usually with `defer r.Release()`.
// Using a Ref after releasing it panics. A Ref must not be copied.
type Ref[T any] struct {
	noCopy noCopy
	value  *T
	flag   *borrowFlag
}

// Get returns the borrowed value.
func (r *Ref[T]) Get() T {
	if r.flag == nil {
		panic("zelle: use of released Ref")
	}
	return *r.value
}

// Release ends the shared borrow. The Ref must not be used afterwards.
func (r *Ref[T]) Release() {
	if r.flag == nil {
		panic("zelle: Ref released twice")
	}
	r.flag.releaseShared()
	r.flag = nil
	r.value = nil
}

// MapRef derives a Ref to part of the borrowed value, for example a struct
// field. It consumes the original Ref: the shared borrow carries over to
// the returned Ref unchanged and the original must not be used afterwards.
func MapRef[T, U any](r *Ref[T], project func(*T) *U) *Ref[U] {
	if r.flag == nil {
		panic("zelle: use of released Ref")
	}
	mapped := &Ref[U]{value: project(r.value), flag: r.flag}
	r.flag = nil
	r.value = nil
	return mapped
}

// FilterMapRef is MapRef for projections that can decline, for example a
// lookup that can miss. If project reports false the original Ref is
// released and no new Ref is returned. Either way the original must not be
// used afterwards.
func FilterMapRef[T, U any](r *Ref[T], project func(*T) (*U, bool)) (*Ref[U], bool) {
	if r.flag == nil {
		panic("zelle: use of released Ref")
	}
	value, ok := project(r.value)
	if !ok {
		r.Release()
		return nil, false
	}
	mapped := &Ref[U]{value: value, flag: r.flag}
	r.flag = nil
	r.value = nil
	return mapped, true
}

// RefMut is a token for the exclusive borrow of a Cell.
//
// A RefMut must be released exactly once, usually with `defer w.Release()`.
// Using a RefMut after releasing it panics. A RefMut must not be copied.
type RefMut[T any] struct {
	noCopy noCopy
	value  *T
	flag   *borrowFlag
}

// Get returns the borrowed value.
func (w *RefMut[T]) Get() T {
	if w.flag == nil {
		panic("zelle: use of released RefMut")
	}
	return *w.value
}

// Set replaces the borrowed value.
func (w *RefMut[T]) Set(value T) {
	if w.flag == nil {
		panic("zelle: use of released RefMut")
	}
	*w.value = value
}

// Update calls f with a pointer to the borrowed value.
// The pointer must not be retained past the call.
func (w *RefMut[T]) Update(f func(*T)) {
	if w.flag == nil {
		panic("zelle: use of released RefMut")
	}
	f(w.value)
}

// Release ends the exclusive borrow. The RefMut must not be used afterwards.
func (w *RefMut[T]) Release() {
	if w.flag == nil {
		panic("zelle: RefMut released twice")
	}
	w.flag.releaseExclusive()
	w.flag = nil
	w.value = nil
}

// MapRefMut derives a RefMut to part of the borrowed value. It consumes the
// original RefMut: the exclusive borrow carries over to the returned RefMut
// unchanged and the original must not be used afterwards.
func MapRefMut[T, U any](w *RefMut[T], project func(*T) *U) *RefMut[U] {
	if w.flag == nil {
		panic("zelle: use of released RefMut")
	}
	mapped := &RefMut[U]{value: project(w.value), flag: w.flag}
	w.flag = nil
	w.value = nil
	return mapped
}

// FilterMapRefMut is MapRefMut for projections that can decline. If project
// reports false the original RefMut is released and no new RefMut is
// returned. Either way the original must not be used afterwards.
func FilterMapRefMut[T, U any](w *RefMut[T], project func(*T) (*U, bool)) (*RefMut[U], bool) {
	if w.flag == nil {
		panic("zelle: use of released RefMut")
	}
	value, ok := project(w.value)
	if !ok {
		w.Release()
		return nil, false
	}
	mapped := &RefMut[U]{value: value, flag: w.flag}
	w.flag = nil
	w.value = nil
	return mapped, true
}
