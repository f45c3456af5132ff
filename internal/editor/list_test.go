package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"same", 2, 2, []string{"a", "b", "c", "d"}},
		{"to end", 0, 3, []string{"b", "c", "d", "a"}},
		{"to start", 3, 0, []string{"d", "a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList([]string{"a", "b", "c", "d"}, nil)
			require.NoError(t, l.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, l.Items())
		})
	}
}

func TestListMoveRoundTrip(t *testing.T) {
	orig := []string{"a", "b", "c", "d", "e"}
	for i := range orig {
		for j := range orig {
			l := NewList(orig, nil)
			require.NoError(t, l.Move(i, j))
			require.NoError(t, l.Move(j, i))
			assert.Equal(t, orig, l.Items(), "move(%d,%d) then move(%d,%d)", i, j, j, i)
		}
	}
}

func TestListLengthAccounting(t *testing.T) {
	l := NewList([]int{1, 2, 3}, nil)
	adds, removes := 0, 0

	l.Append(4)
	adds++
	l.Append(5)
	adds++
	require.NoError(t, l.Remove(0))
	removes++
	require.NoError(t, l.Move(0, 3))
	require.NoError(t, l.Remove(1))
	removes++

	assert.Equal(t, 3+adds-removes, l.Len())
	// 2,3,4,5 -> move(0,3) -> 3,4,5,2 -> remove(1) -> 3,5,2
	assert.Equal(t, []int{3, 5, 2}, l.Items())
}

func TestListOutOfRangeIsNoop(t *testing.T) {
	l := NewList([]string{"a", "b"}, nil)

	assert.ErrorIs(t, l.Remove(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Move(0, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Move(-1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Update(7, func(s *string) error { *s = "x"; return nil }), ErrIndexOutOfRange)

	assert.Equal(t, []string{"a", "b"}, l.Items())
	_, ok := l.Get(2)
	assert.False(t, ok)
}

func TestListCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	l := NewList(in, nil)
	require.NoError(t, l.Update(0, func(s *string) error { *s = "z"; return nil }))

	assert.Equal(t, "a", in[0])
	got := l.Items()
	got[1] = "y"
	v, _ := l.Get(1)
	assert.Equal(t, "b", v)
}
