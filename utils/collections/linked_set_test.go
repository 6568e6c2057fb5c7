package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedSet(t *testing.T) {
	s := NewLinkedSet[string]()
	_, err := s.Front()
	require.Equal(t, ErrCollectionEmpty, err)
	_, err = s.Back()
	require.Equal(t, ErrCollectionEmpty, err)

	words := []string{"woggle", "aulete", "stepney", "zizyphus", "owling"}
	for _, w := range words {
		require.Equal(t, true, s.Add(w))
	}
	require.Equal(t, false, s.Add("aulete"))
	require.Equal(t, 5, s.Size())
	require.Equal(t, words, s.Entries())

	front, err := s.Front()
	require.Nil(t, err)
	require.Equal(t, "woggle", front)
	back, err := s.Back()
	require.Nil(t, err)
	require.Equal(t, "owling", back)

	require.Equal(t, true, s.Remove("stepney"))
	require.Equal(t, false, s.Remove("stepney"))
	require.Equal(t, true, s.Remove("woggle"))
	require.Equal(t, true, s.Remove("owling"))
	require.Equal(t, []string{"aulete", "zizyphus"}, s.Entries())

	front, _ = s.Front()
	require.Equal(t, "aulete", front)
	back, _ = s.Back()
	require.Equal(t, "zizyphus", back)
}

func TestLinkedSetDrain(t *testing.T) {
	var s Set[int] = NewLinkedSet[int]()
	for i := 0; i < 4; i++ {
		s.Add(i)
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, true, s.Contains(i))
		require.Equal(t, true, s.Remove(i))
	}
	require.Equal(t, 0, s.Size())
	require.Empty(t, s.Entries())

	// The list must be reusable after being drained.
	require.Equal(t, true, s.Add(9))
	require.Equal(t, []int{9}, s.Entries())
}
