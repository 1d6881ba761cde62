package datastructcontract

import (
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/safelist/port/datastruct"
)

// Sequence describes the positional behaviour of a datastruct.Sequence.
// The Make function must return an empty sequence.
func Sequence[T any](make contract.Make[datastruct.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	seq := let.Var(s, func(t *testcase.T) datastruct.Sequence[T] {
		return make(t)
	})

	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(3, 7), func() T {
			return c.makeElem(t)
		})
	})

	withValues := func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			seq.Get(t).Append(values.Get(t)...)
		})
	}

	s.Test("appended values are iterated in order", func(t *testcase.T) {
		vs := values.Get(t)
		seq.Get(t).Append(vs...)
		assert.Equal(t, len(vs), seq.Get(t).Len())
		assert.Equal(t, vs, iterkit.Collect(seq.Get(t).Values()))
		if sl, ok := seq.Get(t).(datastruct.Slicer[T]); ok {
			assert.Equal(t, vs, sl.ToSlice())
		}
	})

	s.Test("iteration is repeatable", func(t *testcase.T) {
		seq.Get(t).Append(values.Get(t)...)
		assert.Equal(t,
			iterkit.Collect(seq.Get(t).Values()),
			iterkit.Collect(seq.Get(t).Values()))
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return seq.Get(t).Lookup(index.Get(t))
		})

		s.When("index is out of bound", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return seq.Get(t).Len() + t.Random.IntBetween(0, 42)
			})

			s.Then("the value is reported missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("index is negative", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return -1 * t.Random.IntBetween(1, 42)
			})

			s.Then("the value is reported missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("the value at the index is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[index.Get(t)], got)
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails without changing the sequence", func(t *testcase.T) {
				assert.Error(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("only the value at the index is replaced", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slices.Clone(values.Get(t))
				exp[index.Get(t)] = value.Get(t)
				assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index     = let.Var[int](s, nil)
			newValues = let.Var(s, func(t *testcase.T) []T {
				return random.Slice(t.Random.IntBetween(1, 3), func() T {
					return c.makeElem(t)
				})
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(index.Get(t), newValues.Get(t)...)
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("values are inserted", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, newValues.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(values.Get(t)))
			})

			s.Then("values are placed at the index, and the rest shifts after them", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), newValues.Get(t)...)
				assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
			})

			s.And("index is past the end", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it fails without changing the sequence", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#RemoveAt", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).RemoveAt(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails", func(t *testcase.T) {
				assert.Error(t, act(t))
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("the value at the index is removed", func(t *testcase.T) {
				assert.NoError(t, act(t))

				exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
				assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
			})
		})
	})

	s.Describe("#RemoveRange", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			count = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).RemoveRange(index.Get(t), count.Get(t))
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.And("the range is within bounds", func(s *testcase.Spec) {
				count.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, len(values.Get(t))-index.Get(t))
				})

				s.Then("the values within the range are removed", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+count.Get(t))
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("the range exceeds the sequence", func(s *testcase.Spec) {
				count.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - index.Get(t) + t.Random.IntBetween(1, 7)
				})

				s.Then("it fails without removing anything", func(t *testcase.T) {
					assert.Error(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		withValues(s)

		s.Then("every value is removed", func(t *testcase.T) {
			seq.Get(t).Clear()
			assert.Equal(t, 0, seq.Get(t).Len())
			assert.Empty(t, iterkit.Collect(seq.Get(t).Values()))
		})
	})

	return s.AsSuite("Sequence")
}
