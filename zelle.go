// non-sucking borrow checker
//
// A Cell holds one value and enforces at run time what a borrow checker
// enforces at compile time: any number of readers, or one writer, never
// both. When a borrow conflict happens, the error names the call sites of
// every borrow that is still alive. Build with -tags zelle_nodebug to drop
// the call-site bookkeeping entirely.
//
// Example:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/bloodmagesoftware/zelle"
//	)
//
//	type Foo struct {
//		Bar string
//		Baz int
//	}
//
//	func main() {
//		foo := zelle.New(Foo{"aaa", 42})
//
//		func() {
//			w := foo.BorrowMut() // use BorrowMut to get write access
//			defer w.Release()    // use Release to give it back
//			w.Set(Foo{"abc", 69})
//		}()
//
//		func() {
//			r := foo.Borrow() // use Borrow to get read access
//			defer r.Release()
//			fmt.Printf("(%s, %d)\n", r.Get().Bar, r.Get().Baz)
//
//			// The reader is still alive, so a writer must wait its turn.
//			if _, err := foo.TryBorrowMut(); err != nil {
//				fmt.Println(err) // lists where the Borrow above happened
//			}
//		}()
//
//		func() {
//			// MapRefMut consumes the RefMut, so release the projection.
//			baz := zelle.MapRefMut(foo.BorrowMut(), func(f *Foo) *int { return &f.Baz })
//			defer baz.Release()
//			baz.Set(baz.Get() * 10) // still the same single write borrow
//		}()
//	}
package zelle
