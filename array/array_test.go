package array

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geofduf/hetseq/shape"
)

var testID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func TestNew(t *testing.T) {
	a := New(16)
	assert.Equal(t, 16, a.Cap())
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.IsEmpty())
	assert.True(t, a.Forward().Done())
	assert.Equal(t, shape.Empty{}, a.Index(0))
	assert.Equal(t, make([]byte, 16), a.b.data, "buffer is zeroed")

	assert.Equal(t, 0, New(-1).Cap())
}

func TestPushOne(t *testing.T) {
	a, err := New(4).Push(int32(10))
	require.NoError(t, err)

	f, err := a.Forward().Value()
	require.NoError(t, err)
	assert.Equal(t, int32(10), f)

	b, err := a.Backward().Value()
	require.NoError(t, err)
	assert.Equal(t, int32(10), b)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 4, a.Size())
}

func TestPushMany(t *testing.T) {
	a := New(28).MustPush(int32(1)).MustPush(testID).MustPush(3.0)

	f, err := a.Forward().Next().Next().Value()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	b, err := a.Backward().Next().Next().Value()
	require.NoError(t, err)
	assert.Equal(t, int32(1), b)

	id, err := At[uuid.UUID](a, 1)
	require.NoError(t, err)
	assert.Equal(t, testID, id)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 28, a.Size())
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		id       int
		capacity int
		values   []any
		fail     int // index of the first failing push, -1 if none
	}{
		{1, 4, []any{int32(1)}, -1},
		{2, 4, []any{int32(1), uint8(2)}, 1},
		{3, 3, []any{int32(1)}, 0},
		{4, 14, []any{uint8(1), int32(2), 3.0, true}, -1},
		{5, 13, []any{uint8(1), int32(2), 3.0, true}, 3},
		{6, 0, []any{struct{}{}, [0]int64{}}, -1},
		{7, 4, []any{int32(1), struct{}{}}, -1},
		{8, 4, []any{uint8(1), int32(2)}, 1},
	}
	for _, tt := range tests {
		a := New(tt.capacity)
		fail := -1
		for i, v := range tt.values {
			next, err := a.Push(v)
			if err != nil {
				if !assert.ErrorIs(t, err, ErrCapacity, "test %d", tt.id) {
					t.FailNow()
				}
				fail = i
				break
			}
			a = next
		}
		if fail != tt.fail {
			t.Fatalf("test %d: got first failure at %d, want %d", tt.id, fail, tt.fail)
		}
	}
}

func TestFailedPushKeepsArray(t *testing.T) {
	a := New(4).MustPush(int32(7))
	_, err := a.Push(uint8(1))
	require.ErrorIs(t, err, ErrCapacity)

	assert.Equal(t, 1, a.Len(), "a failed push does not consume the array")
	assert.Equal(t, int32(7), a.Index(0))
	assert.Panics(t, func() { a.MustPush(uint8(1)) })
}

func TestNotPlainData(t *testing.T) {
	type withString struct {
		ID   int
		Name string
	}
	x := 1
	tests := []struct {
		id    int
		value any
	}{
		{1, "two"},
		{2, []byte{1}},
		{3, &x},
		{4, map[int]int{}},
		{5, withString{}},
		{6, [2]string{}},
		{7, nil},
		{8, func() {}},
	}
	for _, tt := range tests {
		_, err := New(64).Push(tt.value)
		if !assert.ErrorIs(t, err, ErrNotPlainData, "test %d", tt.id) {
			t.FailNow()
		}
	}

	_, err := New(64).Push(shape.Empty{})
	assert.ErrorIs(t, err, ErrEmptyMarker)
}

func TestOf(t *testing.T) {
	a, err := Of(int32(1), uint8(2), 3.0, true)
	require.NoError(t, err)
	assert.Equal(t, 14, a.Cap())
	assert.Equal(t, 14, a.Size())
	assert.Equal(t, []any{int32(1), uint8(2), 3.0, true}, a.Values())

	_, err = Of(int32(1), "two")
	assert.ErrorIs(t, err, ErrNotPlainData)
}

func TestIndex(t *testing.T) {
	a, err := Of(uint8(1), int16(-2), 3.0, true)
	require.NoError(t, err)

	tests := []struct {
		id    int
		index int
		want  any
	}{
		{1, 0, uint8(1)},
		{2, 1, int16(-2)},
		{3, 2, 3.0},
		{4, 3, true},
		{5, 4, shape.Empty{}},
		{6, 100, shape.Empty{}},
		{7, -1, shape.Empty{}},
	}
	for _, tt := range tests {
		if got := a.Index(tt.index); got != tt.want {
			t.Fatalf("test %d: got %v (%T), want %v (%T)", tt.id, got, got, tt.want, tt.want)
		}
	}

	_, err = At[int16](a, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = At[bool](a, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBytes(t *testing.T) {
	a, err := Of(uint8(0xaa), [2]uint8{0xbb, 0xcc}, true)
	require.NoError(t, err)
	got := a.Bytes()
	want := []byte{0xaa, 0xbb, 0xcc, 0x1}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	got[0] = 0
	assert.Equal(t, uint8(0xaa), a.Index(0), "Bytes returns a copy")
}

func TestCursorIndex(t *testing.T) {
	a := New(28).MustPush(int32(1)).MustPush(testID).MustPush(3.0)

	forward := []int{0, 4, 20, 28}
	c := a.Forward()
	for i, want := range forward {
		assert.Equal(t, want, c.Index(), "forward step %d", i)
		c = c.Next()
	}

	backward := []int{0, 8, 24, 28}
	c = a.Backward()
	for i, want := range backward {
		assert.Equal(t, want, c.Index(), "backward step %d", i)
		c = c.Next()
	}
}

func TestCursorOffset(t *testing.T) {
	a := New(28).MustPush(int32(1)).MustPush(testID).MustPush(3.0)

	tests := []struct {
		id     int
		c      Cursor
		offset int
		index  int
	}{
		{1, a.Forward(), 0, 0},
		{2, a.Forward().Next(), 4, 4},
		{3, a.Forward().Next().Next(), 20, 20},
		{4, a.Backward(), 20, 0},
		{5, a.Backward().Next(), 4, 8},
		{6, a.Backward().Next().Next(), 0, 24},
		{7, a.Backward().Next().Next().Next(), 28, 28},
		{8, a.Backward().Prev(), 20, 0},
		{9, Cursor{}, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.offset, tt.c.Offset(), "test %d: offset", tt.id)
		assert.Equal(t, tt.index, tt.c.Index(), "test %d: index", tt.id)
	}

	// Prev on a backward cursor does not wrap to the front.
	v, err := a.Backward().Prev().Prev().Value()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestCursorShapes(t *testing.T) {
	a, err := Of(uint8(1), int32(2), 3.0, true)
	require.NoError(t, err)

	c := a.Forward().Next()
	assert.Equal(t, "[int32 float64 bool]", c.Ahead().String())
	assert.Equal(t, "[uint8]", c.Behind().String())

	r := a.Backward().Next()
	assert.True(t, r.Reverse())
	assert.Equal(t, "[float64 int32 uint8]", r.Ahead().String())
	assert.Equal(t, "[bool]", r.Behind().String())

	assert.Equal(t, 4, c.Ahead().Len()+c.Behind().Len())

	v, err := r.Prev().Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)

	// Prev at the front is a no-op.
	assert.Equal(t, 0, a.Forward().Prev().Index())

	end := a.Forward().Next().Next().Next().Next()
	assert.True(t, end.Done())
	_, err = end.Value()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.True(t, end.Next().Done())
}

func TestForwardBackwardMirror(t *testing.T) {
	a, err := Of(uint8(1), testID, int64(-3), float32(4.5), true)
	require.NoError(t, err)

	n := a.Len()
	for k := 0; k < n; k++ {
		f := a.Forward()
		for i := 0; i < k; i++ {
			f = f.Next()
		}
		b := a.Backward()
		for i := 0; i < n-1-k; i++ {
			b = b.Next()
		}
		fv, err := f.Value()
		require.NoError(t, err)
		bv, err := b.Value()
		require.NoError(t, err)
		assert.Equal(t, fv, bv, "position %d", k)
	}
}

func TestValueOf(t *testing.T) {
	type point struct {
		X, Y int16
	}
	a, err := Of(uint8(9), point{3, -4})
	require.NoError(t, err)

	p, err := ValueOf[point](a.Backward())
	require.NoError(t, err)
	assert.Equal(t, point{3, -4}, p)

	_, err = ValueOf[point](a.Forward())
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMovedAndStale(t *testing.T) {
	a := New(8)
	c := a.Forward()
	next := a.MustPush(int32(1))

	assert.PanicsWithValue(t, ErrMoved, func() { a.Len() })

	_, err := c.Value()
	assert.ErrorIs(t, err, ErrStale)

	v, err := next.Forward().Value()
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}
