package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate_OK(t *testing.T) {
	req := RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abcdefg1!"}
	require.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want string
	}{
		{
			name: "missing name",
			req:  RegisterRequest{Email: "a@x.com", Password: "Abcdefg1!"},
			want: "name: required",
		},
		{
			name: "bad email",
			req:  RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "Abcdefg1!"},
			want: "email: invalid address",
		},
		{
			name: "password too short",
			req:  RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Ab1!"},
			want: "password:",
		},
		{
			name: "password without special character",
			req:  RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "Abcdefg1"},
			want: "password:",
		},
		{
			name: "password without upper case",
			req:  RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "abcdefg1!"},
			want: "password:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegisterRequest_Validate_NameTooLong(t *testing.T) {
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	req := RegisterRequest{Name: string(long), Email: "a@x.com", Password: "Abcdefg1!"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "50 characters")
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, Credentials{Email: "a@x.com", Password: "pw"}.Validate())

	err := Credentials{Email: "nope", Password: ""}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email: invalid address")
	assert.Contains(t, err.Error(), "password: required")
}

func TestCredentials_Validate_NoPolicyOnLogin(t *testing.T) {
	// An existing account's password may predate the current policy.
	require.NoError(t, Credentials{Email: "a@x.com", Password: "weak"}.Validate())
}

func TestProfileUpdate_Validate(t *testing.T) {
	require.NoError(t, ProfileUpdate{Name: "Alice", Email: "a@x.com", Password: "Abcdefg1!"}.Validate())
	require.Error(t, ProfileUpdate{Name: "", Email: "a@x.com", Password: "Abcdefg1!"}.Validate())
	require.Error(t, ProfileUpdate{Name: "Alice", Email: "a@x.com", Password: "short"}.Validate())
}
