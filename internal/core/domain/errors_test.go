package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("approve: %w", Forbidden("Not allowed"))

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.True(t, errors.Is(err, ErrNotAllowed))
	assert.False(t, errors.Is(err, ErrAdminOnly))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestKindOf_Internal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "unauthorized: Invalid credentials", ErrInvalidCredentials.Error())
	assert.Equal(t, "not_found", KindNotFound.String())
}
