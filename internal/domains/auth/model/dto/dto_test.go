package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindwell/infras/jwt"
	"mindwell/internal/domains/auth/model/dto"
	"mindwell/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	tests := []struct {
		name         string
		timezone     string
		wantTimezone string
	}{
		{
			name:         "canonical zone kept",
			timezone:     "America/New_York",
			wantTimezone: "America/New_York",
		},
		{
			name:         "abbreviation resolved",
			timezone:     "CST",
			wantTimezone: "America/Chicago",
		},
		{
			name:         "display name resolved",
			timezone:     "Eastern Time (US & Canada)",
			wantTimezone: "America/New_York",
		},
		{
			name:         "empty falls back to default",
			timezone:     "",
			wantTimezone: "America/Chicago",
		},
		{
			name:         "garbage falls back to default",
			timezone:     "Not A Zone",
			wantTimezone: "America/Chicago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fullName := "Test Patient"
			req := dto.RegisterRequest{
				Email:    "patient@example.com",
				Password: "secret-password",
				FullName: &fullName,
				Timezone: tt.timezone,
			}

			user := req.ToUserModel("guest", "hashed-password")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "patient@example.com", user.Email)
			assert.Equal(t, "hashed-password", user.Password)
			assert.Equal(t, constant.RolePatient, user.Level)
			assert.Equal(t, tt.wantTimezone, user.Timezone)
			assert.True(t, user.Active)
			assert.False(t, user.IsVerified)
			assert.Equal(t, "guest", user.Metadata.CreatedBy)
		})
	}
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var res dto.LoginResponse
	res.FromTokenPair(pair)

	assert.Equal(t, "access-token", res.AccessToken)
	assert.Equal(t, "refresh-token", res.RefreshToken)
	assert.Equal(t, int64(900), res.ExpiresIn)
}
