package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitedfins/inventory-api/pkg/jwt"
)

const (
	testSecret = "secreto-de-pruebas"
	testIssuer = "inventory-api-test"
)

func TestGenerateAccess_RoundTrip(t *testing.T) {
	token, err := jwt.GenerateAccess(testSecret, "user-1", "admin", testIssuer, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ParseAccess(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.TypeAccess, claims.TokenType)
}

func TestGenerateRefresh_IncluyeJTI(t *testing.T) {
	token, jti, err := jwt.GenerateRefresh(testSecret, "user-1", "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := jwt.ParseRefresh(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID, "el JTI devuelto es el del token (clave de la blacklist)")
	assert.Equal(t, jwt.TypeRefresh, claims.TokenType)
}

func TestParse_TiposNoIntercambiables(t *testing.T) {
	access, err := jwt.GenerateAccess(testSecret, "user-1", "admin", testIssuer, 15)
	require.NoError(t, err)
	refresh, _, err := jwt.GenerateRefresh(testSecret, "user-1", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, err = jwt.ParseRefresh(testSecret, access)
	assert.Error(t, err, "un access token no pasa por refresh")
	_, err = jwt.ParseAccess(testSecret, refresh)
	assert.Error(t, err, "un refresh token no pasa por access")
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.GenerateAccess(testSecret, "user-1", "admin", testIssuer, 15)
	require.NoError(t, err)

	_, err = jwt.ParseAccess("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.GenerateAccess(testSecret, "user-1", "admin", testIssuer, 0)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = jwt.ParseAccess(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.GenerateAccess("", "user-1", "admin", testIssuer, 15)
	assert.Error(t, err)
	_, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}

func TestGenerateRefresh_JTIUnicoPorToken(t *testing.T) {
	_, jti1, err := jwt.GenerateRefresh(testSecret, "user-1", "admin", testIssuer, 60)
	require.NoError(t, err)
	_, jti2, err := jwt.GenerateRefresh(testSecret, "user-1", "admin", testIssuer, 60)
	require.NoError(t, err)
	assert.NotEqual(t, jti1, jti2)
}
