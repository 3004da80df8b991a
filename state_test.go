package zelle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowFlagTransitions(t *testing.T) {
	t.Run("initial state is unused", func(t *testing.T) {
		var b borrowFlag
		assert.Equal(t, StateUnused, b.state())
	})

	t.Run("shared borrows stack", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryShared(0))
		require.True(t, b.tryShared(0))
		require.True(t, b.tryShared(0))
		assert.Equal(t, StateReading, b.state())

		b.releaseShared()
		b.releaseShared()
		assert.Equal(t, StateReading, b.state())
		b.releaseShared()
		assert.Equal(t, StateUnused, b.state())
	})

	t.Run("exclusive borrow is sole", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryExclusive(0))
		assert.Equal(t, StateWriting, b.state())

		assert.False(t, b.tryShared(0))
		assert.False(t, b.tryExclusive(0))
		assert.Equal(t, StateWriting, b.state())

		b.releaseExclusive()
		assert.Equal(t, StateUnused, b.state())
	})

	t.Run("exclusive fails while reading", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryShared(0))
		assert.False(t, b.tryExclusive(0))
		assert.Equal(t, StateReading, b.state())
	})

	t.Run("failed attempt changes nothing", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryShared(0))
		before := b.flag
		b.tryExclusive(0)
		assert.Equal(t, before, b.flag)
	})
}

func TestBorrowFlagConsistencyViolations(t *testing.T) {
	t.Run("shared release while unused", func(t *testing.T) {
		var b borrowFlag
		assert.PanicsWithValue(t, "zelle: shared release without matching borrow", func() {
			b.releaseShared()
		})
	})

	t.Run("shared release while writing", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryExclusive(0))
		assert.PanicsWithValue(t, "zelle: shared release without matching borrow", func() {
			b.releaseShared()
		})
	})

	t.Run("exclusive release while unused", func(t *testing.T) {
		var b borrowFlag
		assert.PanicsWithValue(t, "zelle: exclusive release without matching borrow", func() {
			b.releaseExclusive()
		})
	})

	t.Run("exclusive release while reading", func(t *testing.T) {
		var b borrowFlag
		require.True(t, b.tryShared(0))
		assert.PanicsWithValue(t, "zelle: exclusive release without matching borrow", func() {
			b.releaseExclusive()
		})
	})
}

func TestBorrowStateString(t *testing.T) {
	assert.Equal(t, "unused", StateUnused.String())
	assert.Equal(t, "reading", StateReading.String())
	assert.Equal(t, "writing", StateWriting.String())
	assert.Equal(t, "invalid", BorrowState(42).String())
}
