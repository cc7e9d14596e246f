package framestack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictShadowing(t *testing.T) {
	d := NewDictStack[string, int]()

	a := d.OpenFrame()
	la, err := d.Push("x", 1)
	require.NoError(t, err)

	b := d.OpenFrame()
	lb, err := d.Push("x", 2)
	require.NoError(t, err)

	h, ok := d.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, lb, h, "lookup resolves to the inner binding")
	v, err := d.Get(h)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, b.Close())
	h, ok = d.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, la, h)
	v, _ = d.Get(h)
	assert.Equal(t, 1, v)
	_, err = d.Get(lb)
	assert.ErrorIs(t, err, ErrStaleHandle)

	require.NoError(t, a.Close())
	_, ok = d.Lookup("x")
	assert.False(t, ok)
	_, err = d.Get(la)
	assert.ErrorIs(t, err, ErrStaleHandle)
}

func TestDictLookupInFrame(t *testing.T) {
	d := NewDictStack[string, string]()
	_, _ = d.Push("red", "first")
	_, _ = d.Push("blue", "first")

	require.NoError(t, d.Scope(func() error {
		_, _ = d.Push("red", "second")

		h, ok := d.LookupInFrame("red")
		require.True(t, ok)
		v, _ := d.Get(h)
		assert.Equal(t, "second", v)

		_, ok = d.LookupInFrame("blue")
		assert.False(t, ok, "blue lives in the outer frame")
		_, ok = d.Lookup("blue")
		assert.True(t, ok)
		return nil
	}))

	v, ok := d.Value("red")
	require.True(t, ok)
	assert.Equal(t, "first", v)
	v, ok = d.Value("blue")
	require.True(t, ok)
	assert.Equal(t, "first", v)

	_, _ = d.Push("blue", "second")
	v, _ = d.Value("blue")
	assert.Equal(t, "second", v)
}

func TestDictDuplicateKeyInFrame(t *testing.T) {
	d := NewDictStack[string, int]()
	f := d.OpenFrame()
	defer f.Close()

	first, _ := d.Push("k", 1)
	second, _ := d.Push("k", 2)

	h, ok := d.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, second, h, "latest push in a frame wins")

	v, err := d.Get(first)
	require.NoError(t, err, "older entry stays reachable through its handle")
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, d.Len())
}

func TestDictKeysAndBindings(t *testing.T) {
	d := NewDictStack[string, int]()
	_, _ = d.Push("red", 1)
	_, _ = d.Push("blue", 2)

	f := d.OpenFrame()
	_, _ = d.Push("green", 3)
	_, _ = d.Push("red", 4)

	if diff := cmp.Diff([]string{"red", "green", "blue"}, d.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	want := map[string]int{"red": 4, "green": 3, "blue": 2}
	if diff := cmp.Diff(want, d.Bindings()); diff != "" {
		t.Errorf("Bindings() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, f.Close())
	if diff := cmp.Diff([]string{"blue", "red"}, d.Keys()); diff != "" {
		t.Errorf("Keys() after close mismatch (-want +got):\n%s", diff)
	}
}

func TestDictTeardown(t *testing.T) {
	var closed []string
	d := NewDictStack[closeRecorder, closeRecorder]()
	rec := func(name string) closeRecorder { return closeRecorder{name: name, log: &closed} }

	f := d.OpenFrame()
	_, _ = d.Push(rec("k1"), rec("v1"))
	_, _ = d.Push(rec("k2"), rec("v2"))
	require.NoError(t, f.Close())

	assert.Equal(t, []string{"v2", "k2", "v1", "k1"}, closed)
}

func TestDictCellValues(t *testing.T) {
	d := NewDictStack[string, *Cell[int]]()
	pushed, _ := d.Push("count", NewCell(0))

	looked, ok := d.Lookup("count")
	require.True(t, ok)

	c1, _ := d.Get(pushed)
	c2, _ := d.Get(looked)
	c1.Update(func(n *int) { *n += 2 })
	c2.Update(func(n *int) { *n += 3 })

	assert.Equal(t, 5, c1.Load())
	assert.Same(t, c1, c2, "both routes share one cell")
	assert.Contains(t, d.String(), "count = 5")
}

func TestDictResetRelease(t *testing.T) {
	d := NewDictStack[string, int]()
	_, _ = d.Push("a", 1)

	require.NoError(t, d.Reset())
	_, ok := d.Lookup("a")
	assert.False(t, ok, "Reset drops root bindings")

	_, _ = d.Push("b", 2)
	f := d.OpenFrame()
	_, _ = d.Push("c", 3)
	assert.ErrorIs(t, d.Reset(), ErrFrameOrder)

	require.NoError(t, d.Release())
	_, ok = d.Lookup("b")
	assert.False(t, ok)
	_, ok = d.LookupInFrame("c")
	assert.False(t, ok)
	assert.Nil(t, d.Keys())
	assert.Empty(t, d.Bindings())
	assert.ErrorIs(t, f.Close(), ErrFrameClosed)
	assert.PanicsWithValue(t, releasedPanic, func() { _, _ = d.Push("d", 4) })
}

func TestDictAllocationFailure(t *testing.T) {
	d := NewDictStack[string, int](WithMaxEntries(1))
	_, err := d.Push("a", 1)
	require.NoError(t, err)

	_, err = d.Push("b", 2)
	require.ErrorIs(t, err, ErrAllocationFailure)
	_, ok := d.Lookup("b")
	assert.False(t, ok, "failed push must not register its key")
}

func BenchmarkDictLookup(b *testing.B) {
	d := NewDictStack[int, int]()
	for depth := 0; depth < 16; depth++ {
		d.OpenFrame()
		for k := 0; k < 8; k++ {
			_, _ = d.Push(depth*8+k, k)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Lookup(i % 128)
	}
}
