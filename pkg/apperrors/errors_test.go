package apperrors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf_ClassifiesConstructors(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("raced")))
	assert.Equal(t, KindTransport, KindOf(Transport(fmt.Errorf("boom"), "db down")))
}

func TestKindOf_UnclassifiedIsUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(fmt.Errorf("driver: bad connection")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	err := errors.Wrap(Conflict("insufficient stock for Mug"), "checkout failed")
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestMessage_UsesClassifiedMessage(t *testing.T) {
	err := Validation("select a size for %s", "Shirt")
	assert.Equal(t, "select a size for Shirt", Message(err))
}

func TestMessage_HidesUnclassifiedInternals(t *testing.T) {
	err := fmt.Errorf("pq: duplicate key value violates unique constraint")
	assert.Equal(t, UnknownMessage, Message(err))
}

func TestMessage_TransportHidesCause(t *testing.T) {
	err := Transport(fmt.Errorf("dial tcp: connection refused"), "failed to load cart")
	assert.Equal(t, "failed to load cart", Message(err))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Transport(cause, "db down")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, err.Error(), "boom")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
