package input

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `
- 1
- two
- 3.0
- true
- {type: uint8, value: 4}
- {type: int16, value: -5}
- {type: float32, value: 6.5}
- {type: uuid, value: 6ba7b810-9dad-11d1-80b4-00c04fd430c8}
- {type: string, value: 9}
`
	got, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	want := []any{
		1,
		"two",
		3.0,
		true,
		uint8(4),
		int16(-5),
		float32(6.5),
		uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		"9",
	}
	assert.Equal(t, want, got)
}

func TestDecodeSpecialFloats(t *testing.T) {
	tests := []struct {
		id    int
		doc   string
		check func(float64) bool
	}{
		{1, "- .inf", func(f float64) bool { return math.IsInf(f, 1) }},
		{2, "- -.inf", func(f float64) bool { return math.IsInf(f, -1) }},
		{3, "- .nan", math.IsNaN},
		{4, "- .NaN", math.IsNaN},
		{5, "- 1e3", func(f float64) bool { return f == 1000 }},
		{6, "- +.Inf", func(f float64) bool { return math.IsInf(f, 1) }},
	}
	for _, tt := range tests {
		got, err := Decode(strings.NewReader(tt.doc))
		require.NoError(t, err, "test %d", tt.id)
		require.Len(t, got, 1, "test %d", tt.id)
		f, ok := got[0].(float64)
		require.True(t, ok, "test %d: got %T", tt.id, got[0])
		assert.True(t, tt.check(f), "test %d: got %v", tt.id, f)
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Decode(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		id  int
		doc string
	}{
		{1, "a: 1"},
		{2, "- {type: uint8, value: 300}"},
		{3, "- {type: complex, value: 1}"},
		{4, "- [1, 2]"},
		{5, "- ~"},
		{6, "- {type: uuid, value: nope}"},
	}
	for _, tt := range tests {
		if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
			t.Fatalf("test %d: got error nil, want error", tt.id)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		id   int
		name string
		text string
		want any
	}{
		{1, "int", "0x10", 16},
		{2, "int8", "-8", int8(-8)},
		{3, "int32", "32", int32(32)},
		{4, "int64", "-64", int64(-64)},
		{5, "uint", "7", uint(7)},
		{6, "uint16", "16", uint16(16)},
		{7, "uint32", "32", uint32(32)},
		{8, "uint64", "64", uint64(64)},
		{9, "bool", "false", false},
		{10, "float64", "1.25", 1.25},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name, tt.text)
		if err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if got != tt.want {
			t.Fatalf("test %d: got %v (%T), want %v (%T)", tt.id, got, got, tt.want, tt.want)
		}
	}
}
