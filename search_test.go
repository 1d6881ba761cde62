package safelist_test

import (
	"cmp"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/safelist"
)

func TestList_search(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *safelist.List[string] {
		return safelist.From([]string{"apple", "banana", "avocado", "cherry", "apricot"})
	})

	startsWithA := func(v string) bool { return strings.HasPrefix(v, "a") }
	never := func(string) bool { return false }

	s.Test("Exists", func(t *testcase.T) {
		assert.True(t, list.Get(t).Exists(startsWithA))
		assert.False(t, list.Get(t).Exists(never))
	})

	s.Test("TrueForAll", func(t *testcase.T) {
		assert.False(t, list.Get(t).TrueForAll(startsWithA))
		assert.True(t, list.Get(t).TrueForAll(func(v string) bool { return 0 < len(v) }))
		assert.True(t, safelist.New[string]().TrueForAll(never), "empty list")
	})

	s.Test("Find and FindLast", func(t *testcase.T) {
		v, ok := list.Get(t).Find(startsWithA)
		assert.True(t, ok)
		assert.Equal(t, "apple", v)

		v, ok = list.Get(t).FindLast(startsWithA)
		assert.True(t, ok)
		assert.Equal(t, "apricot", v)

		_, ok = list.Get(t).Find(never)
		assert.False(t, ok)
		_, ok = list.Get(t).FindLast(never)
		assert.False(t, ok)
	})

	s.Test("FindAll", func(t *testcase.T) {
		assert.Equal(t, []string{"apple", "avocado", "apricot"}, list.Get(t).FindAll(startsWithA))
		assert.Empty(t, list.Get(t).FindAll(never))
	})

	s.Test("FindIndex and FindLastIndex", func(t *testcase.T) {
		assert.Equal(t, 0, list.Get(t).FindIndex(startsWithA))
		assert.Equal(t, 4, list.Get(t).FindLastIndex(startsWithA))
		assert.Equal(t, -1, list.Get(t).FindIndex(never))
		assert.Equal(t, -1, list.Get(t).FindLastIndex(never))
	})

	s.Describe("#FindIndexIn", func(s *testcase.Spec) {
		s.Test("the search is limited to the range", func(t *testcase.T) {
			i, err := list.Get(t).FindIndexIn(1, 3, startsWithA)
			assert.NoError(t, err)
			assert.Equal(t, 2, i)

			i, err = list.Get(t).FindIndexIn(3, 1, startsWithA)
			assert.NoError(t, err)
			assert.Equal(t, -1, i)
		})

		s.Test("invalid range yields an error", func(t *testcase.T) {
			_, err := list.Get(t).FindIndexIn(3, 5, startsWithA)
			assert.ErrorIs(t, safelist.ErrInvalidRange, err)
		})
	})

	s.Describe("#FindLastIndexIn", func(s *testcase.Spec) {
		s.Test("the search is limited to the range", func(t *testcase.T) {
			i, err := list.Get(t).FindLastIndexIn(0, 4, startsWithA)
			assert.NoError(t, err)
			assert.Equal(t, 2, i)
		})

		s.Test("invalid range yields an error", func(t *testcase.T) {
			_, err := list.Get(t).FindLastIndexIn(-1, 2, startsWithA)
			assert.ErrorIs(t, safelist.ErrIndexOutOfRange, err)
		})
	})

	s.Test("IndexOf and LastIndexOf", func(t *testcase.T) {
		list.Get(t).Append("banana")
		assert.Equal(t, 1, safelist.IndexOf(list.Get(t), "banana"))
		assert.Equal(t, 5, safelist.LastIndexOf(list.Get(t), "banana"))
		assert.Equal(t, -1, safelist.IndexOf(list.Get(t), "kiwi"))
		assert.True(t, safelist.Contains(list.Get(t), "cherry"))
		assert.False(t, safelist.Contains(list.Get(t), "kiwi"))

		i, err := safelist.IndexOfIn(list.Get(t), "banana", 2, 4)
		assert.NoError(t, err)
		assert.Equal(t, 5, i)
	})

	s.Test("Remove removes only the first occurrence", func(t *testcase.T) {
		list.Get(t).Append("banana")
		assert.True(t, safelist.Remove(list.Get(t), "banana"))
		assert.Equal(t, []string{"apple", "avocado", "cherry", "apricot", "banana"}, list.Get(t).ToSlice())
		assert.False(t, safelist.Remove(list.Get(t), "kiwi"))
	})
}

func TestList_BinarySearch(t *testing.T) {
	l := safelist.From([]int{1, 3, 5, 7, 9})

	i, ok := safelist.BinarySearch(l, 7)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = safelist.BinarySearch(l, 4)
	assert.False(t, ok)
	assert.Equal(t, 2, i, "insertion point")

	i, ok = l.BinarySearchFunc(9, cmp.Compare[int])
	assert.True(t, ok)
	assert.Equal(t, 4, i)

	i, ok = l.BinarySearchBy(0, safelist.CompareFunc[int](cmp.Compare[int]))
	assert.False(t, ok)
	assert.Equal(t, 0, i)

	i, ok, err := l.BinarySearchIn(2, 3, 9, cmp.Compare[int])
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, i)

	_, _, err = l.BinarySearchIn(4, 2, 9, cmp.Compare[int])
	assert.ErrorIs(t, safelist.ErrInvalidRange, err)
}
