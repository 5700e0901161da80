package auth

import (
	"testing"
	"time"

	"sommelier/config"
	"sommelier/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", 30*time.Minute))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(entity.UserID("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID("alice"), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, 30*time.Minute, jwtService.GetAccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Minute))
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("secret", 0))
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTokenTTL, jwtService.GetAccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("secret", time.Minute))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one", time.Minute))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two", time.Minute))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret", time.Minute))
	require.NoError(t, err)
	impl := svc.(*jwtService)

	issuedAt := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issuedAt }
	token, err := impl.GenerateToken("alice")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret", time.Minute))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice", "uid": "alice", "iss": tokenIssuer})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}
