package safelist_test

import (
	"strconv"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/safelist"
)

func TestList_convert(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *safelist.List[int] {
		return safelist.From([]int{1, 2, 3, 4})
	})

	s.Test("ToSlice returns a copy", func(t *testcase.T) {
		vs := list.Get(t).ToSlice()
		vs[0] = 42
		assert.Equal(t, []int{1, 2, 3, 4}, list.Get(t).ToSlice())
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		s.Test("the clone is independent", func(t *testcase.T) {
			c := list.Get(t).Clone()
			c.Append(5)
			assert.NoError(t, c.Set(0, 0))
			assert.Equal(t, []int{1, 2, 3, 4}, list.Get(t).ToSlice())
			assert.Equal(t, []int{0, 2, 3, 4, 5}, c.ToSlice())
		})

		s.Test("the clone has no iteration in progress", func(t *testcase.T) {
			for range list.Get(t).Values() {
				c := list.Get(t).Clone()
				assert.Equal(t, 0, c.Traversals())
				assert.Equal(t, []int{1, 2, 3, 4}, iterkit.Collect(c.Values()))
				break
			}
		})
	})

	s.Describe("#Slice", func(s *testcase.Spec) {
		s.Test("the range is copied", func(t *testcase.T) {
			vs, err := list.Get(t).Slice(1, 2)
			assert.NoError(t, err)
			assert.Equal(t, []int{2, 3}, vs)
		})

		s.Test("invalid range yields an error", func(t *testcase.T) {
			_, err := list.Get(t).Slice(3, 2)
			assert.ErrorIs(t, safelist.ErrInvalidRange, err)
		})
	})

	s.Describe("#CopyTo", func(s *testcase.Spec) {
		s.Test("elements are copied from the destination index", func(t *testcase.T) {
			dst := make([]int, 6)
			assert.NoError(t, list.Get(t).CopyTo(dst, 1))
			assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, dst)
		})

		s.Test("too small destination is rejected", func(t *testcase.T) {
			dst := make([]int, 4)
			err := list.Get(t).CopyTo(dst, 1)
			assert.ErrorIs(t, safelist.ErrDestinationTooSmall, err)
			assert.Equal(t, []int{0, 0, 0, 0}, dst)
		})

		s.Test("negative destination index is rejected", func(t *testcase.T) {
			err := list.Get(t).CopyTo(make([]int, 10), -1)
			assert.ErrorIs(t, safelist.ErrIndexOutOfRange, err)
		})

		s.Test("a range can be copied", func(t *testcase.T) {
			dst := make([]int, 2)
			assert.NoError(t, list.Get(t).CopyRangeTo(2, dst, 0, 2))
			assert.Equal(t, []int{3, 4}, dst)
		})
	})

	s.Test("Map", func(t *testcase.T) {
		out := safelist.Map(list.Get(t), strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3", "4"}, out.ToSlice())
	})

	s.Describe("#ReadOnly", func(s *testcase.Spec) {
		s.Test("the view follows the list", func(t *testcase.T) {
			ro := list.Get(t).ReadOnly()
			list.Get(t).Append(5)
			assert.Equal(t, 5, ro.Len())
			v, ok := ro.Lookup(4)
			assert.True(t, ok)
			assert.Equal(t, 5, v)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, ro.ToSlice())
			assert.Equal(t, ro.ToSlice(), iterkit.Collect(ro.Values()))
		})
	})
}
