package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func baseClaims() Claims {
	return Claims{
		Email: "ana.torres@uptc.edu.co",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr-1",
			Issuer:    "https://auth.uptc.edu.co",
			Audience:  jwt.ClaimStrings{"reservas-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyValidToken(t *testing.T) {
	v := NewVerifier(testSecret, "https://auth.uptc.edu.co", "reservas-api")
	claims, err := v.Verify(signToken(t, testSecret, baseClaims()))
	require.NoError(t, err)
	assert.Equal(t, "usr-1", claims.Subject)
	assert.Equal(t, "ana.torres@uptc.edu.co", claims.Email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	v := NewVerifier(testSecret, "", "")
	_, err := v.Verify(signToken(t, "other-secret", baseClaims()))
	require.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v := NewVerifier(testSecret, "", "")
	claims := baseClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	v := NewVerifier(testSecret, "https://auth.uptc.edu.co", "")
	claims := baseClaims()
	claims.Issuer = "https://attacker.example"
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	v := NewVerifier(testSecret, "", "reservas-api")
	claims := baseClaims()
	claims.Audience = jwt.ClaimStrings{"otra-api"}
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	v := NewVerifier(testSecret, "", "")
	claims := baseClaims()
	claims.Subject = ""
	_, err := v.Verify(signToken(t, testSecret, claims))
	require.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	v := NewVerifier(testSecret, "", "")
	token := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims())
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Verify(signed)
	require.Error(t, err)
}
