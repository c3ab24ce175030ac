package validator_test

import (
	"testing"
	"time"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Username        string `name:"Username"         validate:"required,max=50"`
	Password        string `name:"Password"         validate:"required,min=5,max=20,nospace"`
	ConfirmPassword string `name:"Confirm Password" validate:"eqfield=Password"`
	Date            string `name:"Date"             validate:"omitempty,usdate"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    signUp
		wantMsg string
	}{
		{
			name: "valid struct",
			data: signUp{Username: "alice", Password: "secret123", ConfirmPassword: "secret123", Date: "06/01/2024"},
		},
		{
			name:    "missing username",
			data:    signUp{Password: "secret123", ConfirmPassword: "secret123"},
			wantMsg: "Username is required",
		},
		{
			name:    "password too short",
			data:    signUp{Username: "alice", Password: "abc", ConfirmPassword: "abc"},
			wantMsg: "Password must be at least 5 characters",
		},
		{
			name:    "password too long",
			data:    signUp{Username: "alice", Password: "abcdefghijklmnopqrstu", ConfirmPassword: "abcdefghijklmnopqrstu"},
			wantMsg: "Password must be at most 20 characters",
		},
		{
			name:    "password with spaces",
			data:    signUp{Username: "alice", Password: "sec ret1", ConfirmPassword: "sec ret1"},
			wantMsg: "Password must not contain spaces",
		},
		{
			name:    "confirmation mismatch",
			data:    signUp{Username: "alice", Password: "secret123", ConfirmPassword: "secret124"},
			wantMsg: "Confirm Password and password are not the same",
		},
		{
			name:    "iso date rejected",
			data:    signUp{Username: "alice", Password: "secret123", ConfirmPassword: "secret123", Date: "2024-06-01"},
			wantMsg: "Date must be a date in MM/DD/YYYY format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("12/31/2024", "usdate"))
	assert.Error(t, validator.ValidateVar("31/12/2024", "usdate"))
}

type period struct {
	From time.Time `name:"start date" validate:"required"`
	To   time.Time `name:"end date"   validate:"required,gtefield=From"`
}

func TestValidateStructDateRange(t *testing.T) {
	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, validator.ValidateStruct(&period{From: from, To: from}))

	err := validator.ValidateStruct(&period{From: from, To: from.AddDate(0, 0, -1)})
	require.Error(t, err)
	assert.Equal(t, "end date must not be before the from date", err.Error())
}
