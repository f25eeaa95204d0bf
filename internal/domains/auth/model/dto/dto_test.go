package dto_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"nomad/infras/jwt"
	"nomad/internal/domains/auth/model/dto"
	"nomad/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		FirstName: " Grace ",
		LastName:  "Hopper",
		Email:     "Grace@Example.com",
		Password:  "irrelevant",
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed")

	assert.NoError(t, uuid.Validate(user.ID))
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "grace@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleIDRequester, user.RoleID)
	assert.Equal(t, constant.SignupTypeLocal, user.SignupType)
	assert.False(t, user.IsVerified)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
	assert.Equal(t, user.CreatedAt, user.ModifiedAt)
}
