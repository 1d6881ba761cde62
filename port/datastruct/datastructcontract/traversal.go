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

// MutableTraversal describes how an iteration over a datastruct.MutableTraversable
// reacts when the container is modified from within the iteration.
// The Make function must return an empty container.
func MutableTraversal[T any](make contract.Make[datastruct.MutableTraversable[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	// five unique values, so the yielded elements can be told apart
	values := let.Var(s, func(t *testcase.T) []T {
		return random.Slice(5, func() T { return c.makeElem(t) }, random.UniqueValues)
	})

	extra := let.Var(s, func(t *testcase.T) T {
		return random.Unique(func() T { return c.makeElem(t) }, values.Get(t)...)
	})

	subject := let.Var(s, func(t *testcase.T) datastruct.MutableTraversable[T] {
		sub := make(t)
		sub.Append(values.Get(t)...)
		return sub
	})

	// onThird is called right after the element at index 2 was yielded.
	onThird := let.Var[func(t *testcase.T)](s, nil)
	on := func(s *testcase.Spec, fn func(t *testcase.T)) {
		onThird.Let(s, func(*testcase.T) func(t *testcase.T) { return fn })
	}

	act := let.Act(func(t *testcase.T) []T {
		var (
			got []T
			n   int
		)
		subject.Get(t).ForEach(func(v T) {
			got = append(got, v)
			n++
			if n == 3 {
				onThird.Get(t)(t)
			}
		})
		return got
	})

	s.When("nothing changes during the iteration", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {})

		s.Then("every value is visited in order", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
		})

		s.Then("the iteration is no longer tracked after it finished", func(t *testcase.T) {
			act(t)
			assert.Equal(t, 0, subject.Get(t).Traversals())
		})
	})

	s.When("the iteration is inspected from within", func(s *testcase.Spec) {
		traversals := let.VarOf(s, -1)

		onThird.Let(s, func(t *testcase.T) func(t *testcase.T) {
			return func(t *testcase.T) { traversals.Set(t, subject.Get(t).Traversals()) }
		})

		s.Then("it is counted as in progress", func(t *testcase.T) {
			act(t)
			assert.Equal(t, 1, traversals.Get(t))
		})
	})

	s.When("a value is inserted at or before the current element", func(s *testcase.Spec) {
		onThird.Let(s, func(t *testcase.T) func(t *testcase.T) {
			index := t.Random.IntBetween(0, 2)
			return func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).Insert(index, extra.Get(t)))
			}
		})

		s.Then("the inserted value is not visited, and nothing is visited twice", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
			assert.Equal(t, 6, subject.Get(t).Len())
		})
	})

	s.When("a value is inserted right after the current element", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).Insert(3, extra.Get(t)))
		})

		s.Then("the inserted value is visited next", func(t *testcase.T) {
			vs := values.Get(t)
			exp := append(slices.Clone(vs[:3]), extra.Get(t))
			exp = append(exp, vs[3:]...)
			assert.Equal(t, exp, act(t))
		})
	})

	s.When("a value is appended", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			subject.Get(t).Append(extra.Get(t))
		})

		s.Then("the appended value is visited last", func(t *testcase.T) {
			assert.Equal(t, append(slices.Clone(values.Get(t)), extra.Get(t)), act(t))
		})
	})

	s.When("a value before the current element is removed", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).RemoveAt(1))
		})

		s.Then("the remaining values are still visited", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
			assert.Equal(t, 4, subject.Get(t).Len())
		})
	})

	s.When("the current element is removed", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).RemoveAt(2))
		})

		s.Then("the element after it is visited next", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
		})
	})

	s.When("the element after the current one is removed", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).RemoveAt(3))
		})

		s.Then("the removed value is skipped", func(t *testcase.T) {
			vs := values.Get(t)
			exp := append(slices.Clone(vs[:3]), vs[4])
			assert.Equal(t, exp, act(t))
		})
	})

	s.When("a range that includes the current element is removed", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).RemoveRange(1, 2))
		})

		s.Then("the iteration continues with the first value after the range", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
			assert.Equal(t, 3, subject.Get(t).Len())
		})
	})

	s.When("a range after the current element is removed", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			assert.NoError(t, subject.Get(t).RemoveRange(3, 2))
		})

		s.Then("the iteration ends", func(t *testcase.T) {
			assert.Equal(t, values.Get(t)[:3], act(t))
		})
	})

	s.When("the container is cleared", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			subject.Get(t).Clear()
		})

		s.Then("the iteration ends", func(t *testcase.T) {
			assert.Equal(t, values.Get(t)[:3], act(t))
			assert.Equal(t, 0, subject.Get(t).Len())
			assert.Equal(t, 0, subject.Get(t).Traversals())
		})
	})

	s.When("an other iteration runs from within", func(s *testcase.Spec) {
		inner := let.Var[[]T](s, nil)

		on(s, func(t *testcase.T) {
			inner.Set(t, iterkit.Collect(subject.Get(t).Values()))
		})

		s.Then("both iterations visit every value", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
			assert.Equal(t, values.Get(t), inner.Get(t))
		})
	})

	s.When("an other iteration modifies the container from within", func(s *testcase.Spec) {
		on(s, func(t *testcase.T) {
			subject.Get(t).ForEach(func(v T) {
				if subject.Get(t).Len() == 5 {
					assert.NoError(t, subject.Get(t).RemoveAt(0))
				}
			})
		})

		s.Then("the outer iteration keeps its place", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t))
			assert.Equal(t, 4, subject.Get(t).Len())
		})
	})

	s.Test("the container holds the values before the iteration", func(t *testcase.T) {
		assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
	})

	s.Test("breaking out of an iteration stops tracking it", func(t *testcase.T) {
		var visited int
		for range subject.Get(t).Values() {
			visited++
			assert.Equal(t, 1, subject.Get(t).Traversals())
			break
		}
		assert.Equal(t, 1, visited)
		assert.Equal(t, 0, subject.Get(t).Traversals())
	})

	s.Test("repeated iterations don't accumulate", func(t *testcase.T) {
		t.Random.Repeat(2, 7, func() {
			assert.Equal(t, values.Get(t), iterkit.Collect(subject.Get(t).Values()))
		})
		assert.Equal(t, 0, subject.Get(t).Traversals())
		if cs, ok := subject.Get(t).(interface{ CursorSlots() int }); ok {
			assert.Equal(t, 1, cs.CursorSlots())
		}
	})

	return s.AsSuite("MutableTraversal")
}
