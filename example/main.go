package main

import (
	"fmt"

	"github.com/bloodmagesoftware/zelle"
)

type Foo struct {
	Bar string
	Baz int
}

func main() {
	foo := zelle.New(Foo{"aaa", 42})

	// Write example: exclusive borrow with deferred release
	func() {
		w := foo.BorrowMut()
		defer w.Release()
		w.Set(Foo{"abc", 69})
	}()

	// Read example: any number of shared borrows may coexist
	func() {
		a := foo.Borrow()
		defer a.Release()
		b := foo.Borrow()
		defer b.Release()
		fmt.Printf("a => (%s, %d)\n", a.Get().Bar, a.Get().Baz)
		fmt.Printf("b => (%s, %d)\n", b.Get().Bar, b.Get().Baz)

		// A write borrow while readers are alive fails; the error lists
		// the file:line of both Borrow calls above.
		if _, err := foo.TryBorrowMut(); err != nil {
			fmt.Println(err)
		}
	}()

	// Modify a single field through a projected borrow.
	// MapRefMut consumes the original RefMut, so the projection is
	// what gets released.
	func() {
		baz := zelle.MapRefMut(foo.BorrowMut(), func(f *Foo) *int { return &f.Baz })
		defer baz.Release()
		baz.Set(baz.Get() * 10)
	}()

	// Read modified value with the closure helper
	changed := zelle.Read(foo, func(f Foo) string {
		return fmt.Sprintf("changed => (%s, %d)", f.Bar, f.Baz)
	})
	fmt.Println(changed)
}
