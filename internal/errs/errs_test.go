package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without wrapped cause",
			err:      New(CodeVectorCorrupted, "tree shape invalid"),
			expected: "[VECTOR_CORRUPTED] tree shape invalid",
		},
		{
			name:     "with wrapped cause",
			err:      Wrap(CodeInvalidNodeID, "load failed", errors.New("id 7 missing")),
			expected: "[INVALID_NODE_ID] load failed: id 7 missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(CodeMixedDepth, "bad shape", cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestErrorIs(t *testing.T) {
	a := New(CodePoolHasCycles, "cycle 1")
	b := New(CodePoolHasCycles, "cycle 2")
	c := New(CodeInvalidChildCount, "count")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
	assert.True(t, errors.Is(a, ErrPoolHasCycles))
}

func TestCode(t *testing.T) {
	assert.Equal(t, CodeIndexOutOfRange, Code(ErrIndexOutOfRange))
	assert.Equal(t, CodeTransientInvalidated, Code(Wrap(CodeTransientInvalidated, "used", nil)))
	assert.Equal(t, "", Code(errors.New("plain error")))
	assert.Equal(t, "", Code(nil))
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidChildCount, "node %d has %d children", 3, 40)
	assert.Equal(t, "[INVALID_CHILD_COUNT] node 3 has 40 children", err.Error())
}
