package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyWithoutCallback(t *testing.T) {
	s := NewSink()
	assert.NotPanics(t, func() { s.Notify(1, 10, "working") })
}

func TestNotifyDeliversSynchronously(t *testing.T) {
	s := NewSink()

	var got []string
	s.Set(func(current, total int, message string) {
		got = append(got, message)
	})

	s.Notify(0, 2, "start")
	s.Notify(2, 2, "done")
	assert.Equal(t, []string{"start", "done"}, got)
}

func TestLastRegistrationWins(t *testing.T) {
	s := NewSink()

	var first, second int
	s.Set(func(current, total int, message string) { first++ })
	s.Set(func(current, total int, message string) { second++ })

	s.Notify(1, 1, "x")
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestSetNilUnregisters(t *testing.T) {
	s := NewSink()

	var calls int
	s.Set(func(current, total int, message string) { calls++ })
	s.Set(nil)
	s.Set(nil)

	s.Notify(1, 1, "x")
	assert.Zero(t, calls)
}
