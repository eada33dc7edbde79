package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Status(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
		{Kind(42), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "internal", KindInternal.String())
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("boom")

	err := Internal("failed to list content", cause)

	assert.Equal(t, "failed to list content: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, err.Kind)
}

func TestError_WithoutCause(t *testing.T) {
	err := NotFound("content with ID 9 not found", nil)

	assert.Equal(t, "content with ID 9 not found", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad", nil), KindValidation},
		{"not found", NotFound("missing", nil), KindNotFound},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("missing", nil)), KindNotFound},
		{"plain error", errors.New("plain"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
