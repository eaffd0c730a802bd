package errorkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/seqcursor/pkg/errorkit"
	"go.llib.dev/testcase/assert"
)

func TestFromRecover(t *testing.T) {
	t.Run("nothing recovered", func(t *testing.T) {
		assert.Nil(t, errorkit.FromRecover(nil))
	})
	t.Run("error value is returned as is", func(t *testing.T) {
		exp := errors.New(rnd.String())
		got := func() (err error) {
			defer func() { err = errorkit.FromRecover(recover()) }()
			panic(exp)
		}()
		assert.Equal(t, exp, got)
	})
	t.Run("non error value is formatted", func(t *testing.T) {
		got := func() (err error) {
			defer func() { err = errorkit.FromRecover(recover()) }()
			panic("boom")
		}()
		assert.NotNil(t, got)
		assert.Equal(t, "boom", got.Error())
	})
}
