package errorkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/seqcursor/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		errs = testcase.Let[[]error](s, nil)
	)
	act := func(t *testcase.T) error {
		return errorkit.Merge(errs.Get(t)...)
	}

	s.When("no error is supplied", func(s *testcase.Spec) {
		errs.Let(s, func(t *testcase.T) []error {
			return []error{nil, nil}
		})

		s.Then("it will return with nil", func(t *testcase.T) {
			t.Must.Nil(act(t))
		})
	})

	s.When("an error value is supplied", func(s *testcase.Spec) {
		expectedErr := testcase.Let(s, func(t *testcase.T) error {
			return errors.New(t.Random.String())
		})

		errs.Let(s, func(t *testcase.T) []error {
			return []error{nil, expectedErr.Get(t)}
		})

		s.Then("the exact value is returned", func(t *testcase.T) {
			t.Must.Equal(expectedErr.Get(t), act(t))
		})
	})

	s.When("multiple error values are supplied", func(s *testcase.Spec) {
		const (
			ErrOne errorkit.Error = "one"
			ErrTwo errorkit.Error = "two"
		)

		errs.Let(s, func(t *testcase.T) []error {
			return []error{ErrOne, nil, ErrTwo}
		})

		s.Then("all of them can be matched with errors.Is", func(t *testcase.T) {
			err := act(t)
			t.Must.True(errors.Is(err, ErrOne))
			t.Must.True(errors.Is(err, ErrTwo))
		})

		s.Then("the message joins the messages line by line", func(t *testcase.T) {
			t.Must.Equal("one\ntwo", act(t).Error())
		})
	})
}

func TestFinish(t *testing.T) {
	t.Run("errors are merged from all source", func(t *testing.T) {
		err1 := errors.New(rnd.String())
		err2 := errors.New(rnd.String())

		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return err1
			})

			return err2
		}()

		assert.ErrorIs(t, err1, got)
		assert.ErrorIs(t, err2, got)
	})

	t.Run("func return value returned", func(t *testing.T) {
		exp := errors.New(rnd.String())
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return nil
			})

			return exp
		}()

		assert.Equal(t, exp, got)
	})
}
