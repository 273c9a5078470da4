package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, OrDefault(0, 5))
	assert.Equal(t, 3, OrDefault(3, 5))
	assert.Equal(t, "fallback", OrDefault("", "fallback"))
	assert.Equal(t, "value", OrDefault("value", "fallback"))
}

func TestMust(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		Must(nil)
	})
	t.Run("non-nil error", func(t *testing.T) {
		assert.Panics(t, func() {
			Must(errors.New("oh no"))
		})
	})
}

func TestMust1(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		f := func() (int, error) { return 4, nil }
		assert.Equal(t, 4, Must1(f()))
	})
	t.Run("non-nil error", func(t *testing.T) {
		f := func() (int, error) { return 0, errors.New("oh no") }
		assert.Panics(t, func() {
			Must1(f())
		})
	})
}

func TestRecoverPanicAsError(t *testing.T) {
	f := func() (err error) {
		defer RecoverPanicAsError(&err)
		panic(errors.New("inner failure"))
	}
	err := f()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "inner failure")
	}
}
