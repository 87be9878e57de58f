package credentials

import (
	"errors"
	"testing"

	"github.com/shad03152015/HotRide/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       IdentifierKind
		wantErr    bool
	}{
		{name: "plain email", identifier: "user@example.com", want: IdentifierEmail},
		{name: "anything with at sign is email", identifier: "not-really@x", want: IdentifierEmail},
		{name: "bare digits phone", identifier: "5551234567", want: IdentifierPhone},
		{name: "e164 phone", identifier: "+15551234567", want: IdentifierPhone},
		{name: "formatted phone", identifier: "(555) 123-4567", want: IdentifierPhone},
		{name: "too few digits", identifier: "12345", wantErr: true},
		{name: "letters", identifier: "justausername", wantErr: true},
		{name: "empty", identifier: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ClassifyIdentifier(tt.identifier)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, auth.ErrInvalidIdentifier))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("user@nodot"))
	assert.Error(t, ValidateEmail("no spaces@example.com"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+1 (555) 123-4567"))
	assert.Error(t, ValidatePhone("555-1234"))
	assert.Error(t, ValidatePhone("phone123456789"))
}
