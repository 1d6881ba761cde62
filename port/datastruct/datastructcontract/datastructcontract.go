// Package datastructcontract holds behavioural contracts for the role interfaces in the datastruct package.
package datastructcontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Config[T any] struct {
	// MakeElem creates a new element for the tests.
	// By default, a random value is made with testcase's random.
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) Configure(t *Config[T]) {
	t.MakeElem = zerokit.Coalesce(c.MakeElem, t.MakeElem)
}

type Option[T any] option.Option[Config[T]]

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflectkit.TypeOf[T]()).(T)
}
