package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewParsingError("bad numeric value", nil),
			want: "[PARSING] bad numeric value",
		},
		{
			name: "with cause",
			err:  NewStorageError("cannot create directory", fmt.Errorf("permission denied")),
			want: "[STORAGE] cannot create directory: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewStorageError("wrapper", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestNewSchemaError(t *testing.T) {
	missing := []string{"price", "room_type"}
	err := NewSchemaError("listings dataset missing columns", missing)

	assert.Equal(t, ErrTypeSchema, err.Type)
	assert.Equal(t, missing, err.Context["missing_columns"])
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("out of range", nil).
		WithContext("column", "price").
		WithContext("row", 42)

	assert.Equal(t, "price", err.Context["column"])
	assert.Equal(t, 42, err.Context["row"])
}

func TestIsType(t *testing.T) {
	err := NewConfigError("bad config", nil)

	assert.True(t, IsType(err, ErrTypeConfig))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeConfig))
}
