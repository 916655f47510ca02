package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minhaigreja_backend/internals/configs"
	"minhaigreja_backend/internals/constants"
	userModel "minhaigreja_backend/internals/features/users/user/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "segredo-de-teste-access"
	configs.JWTRefreshSecret = "segredo-de-teste-refresh"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestIssueAccessTokenClaims(t *testing.T) {
	setTestSecrets(t)

	churchID := uuid.New()
	user := &userModel.UserModel{
		ID:       uuid.New(),
		Role:     constants.RoleChurchAdmin,
		ChurchID: &churchID,
	}

	tokenString, err := IssueAccessToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, constants.RoleChurchAdmin, claims["role"])
	assert.Equal(t, churchID.String(), claims["church_id"])
}

func TestIssueAccessTokenWithoutChurch(t *testing.T) {
	setTestSecrets(t)

	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleSuperAdmin}
	tokenString, err := IssueAccessToken(user)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	_, has := claims["church_id"]
	assert.False(t, has, "super admin não carrega church_id")
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	setTestSecrets(t)

	userID := uuid.New()
	tokenString, err := IssueRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseRefreshTokenRejectsAccessSecret(t *testing.T) {
	setTestSecrets(t)

	// token assinado com o segredo de ACCESS não passa como refresh
	user := &userModel.UserModel{ID: uuid.New(), Role: constants.RoleMember}
	accessToken, err := IssueAccessToken(user)
	require.NoError(t, err)

	_, err = ParseRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	setTestSecrets(t)
	_, err := ParseRefreshToken("nem-um-jwt")
	assert.Error(t, err)
}

func TestIssueWithoutSecretFails(t *testing.T) {
	setTestSecrets(t)
	configs.JWTSecret = ""
	configs.JWTRefreshSecret = ""

	_, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
	_, err = IssueRefreshToken(uuid.New())
	assert.Error(t, err)
}

func TestComputeRefreshHash(t *testing.T) {
	setTestSecrets(t)

	h1 := ComputeRefreshHash("token-abc")
	h2 := ComputeRefreshHash("token-abc")
	h3 := ComputeRefreshHash("token-xyz")

	assert.Equal(t, h1, h2, "mesmo token gera o mesmo hash")
	assert.NotEqual(t, h1, h3)
	assert.NotContains(t, h1, "token-abc", "hash não expõe o token")
	assert.Len(t, h1, 64) // sha256 em hex
}
