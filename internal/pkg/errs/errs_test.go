//go:build unit

package errs_test

import (
	"testing"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errs.Newf("room %s is taken", "101")
	marked := errs.Mark(cause, errs.ErrBookingConflict)

	assert.True(t, errs.Is(marked, errs.ErrBookingConflict))
	assert.True(t, errs.Is(marked, cause))
	assert.Equal(t, "room 101 is taken", marked.Error())

	assert.Equal(t, errs.ErrInvalidRange, errs.Mark(nil, errs.ErrInvalidRange))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "load booking"))

	wrapped := errs.Wrap(errs.ErrRoomNotFound, "load room")
	assert.True(t, errs.Is(wrapped, errs.ErrRoomNotFound))
	assert.Equal(t, "load room: room not found", wrapped.Error())
}

func TestStackLines(t *testing.T) {
	assert.Nil(t, errs.StackLines(nil, 5))

	lines := errs.StackLines(errs.New("boom"), 3)
	assert.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
}
