package observable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	s := MustNew([]string{"aa", "bb"}, WithCapacity(3), WithReplacementPolicy(LIFO))
	original, cloned := 0, 0
	s.On(OperationAdd, func(_ string, _ Operation, set *Set[string]) {
		if set == s {
			original++
		} else {
			cloned++
		}
	})
	scoped := 0
	h := s.OnValue(OperationRemove, "aa", func(string, Operation, *Set[string]) { scoped++ })

	c := s.Clone()
	require.Equal(t, 3, c.Capacity())
	require.Equal(t, LIFO, c.ReplacementPolicy())
	require.Equal(t, sorted(s.Values()), sorted(c.Values()))

	// Membership is independent.
	c.Add("cc")
	require.Equal(t, false, s.Contains("cc"))
	require.Equal(t, 1, cloned)
	require.Equal(t, 0, original)

	// Listeners registered after cloning stay on their own set.
	late := 0
	s.On(OperationAdd, func(string, Operation, *Set[string]) { late++ })
	c.Add("dd")
	require.Equal(t, 0, late)
	s.Add("dd")
	require.Equal(t, 1, late)

	// Handles are valid on both sets and removed independently.
	require.Equal(t, true, c.Off(h))
	c.Remove("aa")
	require.Equal(t, 0, scoped)
	s.Remove("aa")
	require.Equal(t, 1, scoped)
}

func TestCloneKeepsRecencyOrder(t *testing.T) {
	s := MustNew[string](nil, WithCapacity(3))
	for _, v := range []string{"a", "b", "c"} {
		s.Add(v)
	}
	// Swap-remove reorders the slots, but not the recency list.
	s.Remove("a")
	s.Add("a")
	c := s.Clone()
	c.Add("d")
	require.Equal(t, []string{"a", "c", "d"}, sorted(c.Values()))
}

func TestCloneDuringOnceDispatch(t *testing.T) {
	s := MustNew[string](nil)
	var c *Set[string]
	fired := 0
	s.Once(OperationAdd, func(_ string, _ Operation, set *Set[string]) {
		fired++
		if c == nil {
			c = set.Clone()
		}
	})
	s.Add("aa")
	c.Add("bb")
	require.Equal(t, 1, fired)
	require.Empty(t, c.once)
}
