package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoSingleRun(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("geometry", func() { value = v })
	}

	require.Len(t, queue, 1)
	queue[0]()
	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("geometry"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("a", func() {})
	c.Post("b", func() {})
	c.Post("a", func() {})

	assert.Len(t, queue, 2)
}

func TestCoalescer_FlushRunsNowAndScheduledRunIsEmpty(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	runs := 0
	c.Post("geometry", func() { runs++ })
	c.Flush("geometry")
	assert.Equal(t, 1, runs)

	queue[0]()
	assert.Equal(t, 1, runs)

	// A new post after the flush schedules again.
	c.Post("geometry", func() { runs++ })
	assert.Len(t, queue, 2)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("save", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("save", func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
