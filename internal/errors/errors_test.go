package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewParsingError("unexpected character", ErrInvalidJSON)
	assert.Equal(t, "parsing: unexpected character: invalid JSON format", err.Error())

	bare := &AppError{Type: ErrorTypeOutput, Message: "write failed"}
	assert.Equal(t, "output: write failed", bare.Error())
}

func TestAppErrorIsMatchesOnType(t *testing.T) {
	err := NewParsingError("bad token", ErrInvalidJSON)

	assert.ErrorIs(t, err, &AppError{Type: ErrorTypeParsing})
	assert.NotErrorIs(t, err, &AppError{Type: ErrorTypeInput})
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewInputError("cannot read file", ErrFileNotFound)
	assert.ErrorIs(t, err, ErrFileNotFound)

	joined := NewParsingError("truncated", stderrors.Join(ErrInvalidJSON, ErrUnexpectedEOF))
	assert.ErrorIs(t, joined, ErrInvalidJSON)
	assert.ErrorIs(t, joined, ErrUnexpectedEOF)
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"app error uses its message",
			NewParsingError("unexpected character ','", ErrInvalidJSON),
			"JSON parsing error: unexpected character ','",
		},
		{
			"input error",
			NewInputError("no input provided", ErrNoInput),
			"Input error: no input provided",
		},
		{
			"bare sentinel",
			ErrEmptyInput,
			"Error: The input is empty. Please provide valid JSON data.",
		},
		{
			"unknown error",
			stderrors.New("something else"),
			"Error: something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFriendlyError(tt.err))
		})
	}
}
