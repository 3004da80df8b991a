package zelle

import (
	"fmt"
	"strings"
)

// BorrowError is returned by TryBorrow when the cell is mutably borrowed.
// Borrow panics with the same value.
type BorrowError struct {
	// Attempt is the call site of the failed borrow.
	// Zero when location capture is disabled or unavailable.
	Attempt Location
	// Active lists the call sites of the borrows alive at the time of the
	// attempt, in creation order. Nil when location capture is disabled.
	Active []Location
}

func (e *BorrowError) Error() string {
	return borrowMessage("already mutably borrowed", e.Attempt, e.Active)
}

// BorrowMutError is returned by TryBorrowMut when the cell is already
// borrowed, shared or mutably. BorrowMut panics with the same value.
type BorrowMutError struct {
	// Attempt is the call site of the failed borrow.
	// Zero when location capture is disabled or unavailable.
	Attempt Location
	// Active lists the call sites of the borrows alive at the time of the
	// attempt, in creation order. Nil when location capture is disabled.
	Active []Location
}

func (e *BorrowMutError) Error() string {
	return borrowMessage("already borrowed", e.Attempt, e.Active)
}

func borrowMessage(kind string, attempt Location, active []Location) string {
	var sb strings.Builder
	sb.WriteString("zelle: cell is ")
	sb.WriteString(kind)
	if attempt != (Location{}) {
		fmt.Fprintf(&sb, " (borrow attempted at %s)", attempt)
	}
	if len(active) > 0 {
		sb.WriteString("\ncurrent active borrows:\n")
		for i, loc := range active {
			fmt.Fprintf(&sb, "  %d - %s\n", i, loc)
		}
	}
	return sb.String()
}
