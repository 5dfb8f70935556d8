package analyzererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Field: "amount", Columns: []string{"data", "descricao"}}
	assert.Equal(t, "required column 'amount' not found in input (columns: [data descricao])", err.Error())
}

func TestRowParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad number")
	err := &RowParseError{Row: 3, Field: "amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "amount='abc'")
	assert.ErrorIs(t, err, cause)
}

func TestProcessingErrorHidesCause(t *testing.T) {
	cause := errors.New("index out of range")
	err := NewProcessingError("analysis", cause)

	require.Equal(t, "analysis: an unexpected error occurred while analyzing the statement", err.Error())
	assert.NotContains(t, err.Error(), cause.Error())
	assert.ErrorIs(t, err, cause)
}
