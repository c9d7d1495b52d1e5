package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("document path is required"),
			want: 2,
		},
		{
			name: "invalid document",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("document failed validation"),
			want: 3,
		},
		{
			name: "missing file",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("document file not found"),
			want: 5,
		},
		{
			name: "plain error",
			err:  assert.AnError,
			want: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessagePrefersBuilderMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("short message").
		WithCause(assert.AnError)
	assert.Equal(t, "short message", errorMessage(err))
	assert.Equal(t, assert.AnError.Error(), errorMessage(assert.AnError))
}
