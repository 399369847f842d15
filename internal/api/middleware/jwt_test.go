package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/campus-helpdesk/pkg/types"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	issuer = "https://idp.test"
	secret = "middleware-secret"
)

func claimsFor(subject string, exp time.Duration) types.Claims {
	return types.Claims{
		Email: subject + "@college.edu",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
		},
	}
}

func signHS(t *testing.T, c types.Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestNewVerifier(t *testing.T) {
	_, err := NewVerifier(issuer, "", "")
	assert.Error(t, err)

	_, err = NewVerifier(issuer, "", "not a pem")
	assert.Error(t, err)

	v, err := NewVerifier(issuer, secret, "")
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestParseToken_HS256(t *testing.T) {
	v, err := NewVerifier(issuer, secret, "")
	require.NoError(t, err)

	claims, err := v.ParseToken(signHS(t, claimsFor("user_a", time.Hour), secret))
	require.NoError(t, err)
	assert.Equal(t, "user_a", claims.Subject)
	assert.Equal(t, "user_a@college.edu", claims.Email)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong key", signHS(t, claimsFor("user_a", time.Hour), "other")},
		{"expired", signHS(t, claimsFor("user_a", -time.Minute), secret)},
		{"no subject", signHS(t, claimsFor("", time.Hour), secret)},
		{"no expiry", signHS(t, types.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_a", Issuer: issuer}}, secret)},
		{"foreign issuer", func() string {
			c := claimsFor("user_a", time.Hour)
			c.Issuer = "https://evil.test"
			return signHS(t, c, secret)
		}()},
		{"garbage", "a.b.c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ParseToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestParseToken_RS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pub := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	v, err := NewVerifier(issuer, secret, string(pub))
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claimsFor("user_rsa", time.Hour)).SignedString(key)
	require.NoError(t, err)
	claims, err := v.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user_rsa", claims.Subject)

	_, err = v.ParseToken(signHS(t, claimsFor("user_rsa", time.Hour), secret))
	assert.Error(t, err, "HS256 is refused once a public key is configured")
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v, err := NewVerifier(issuer, secret, "")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(v), func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Subject)
	})

	good := signHS(t, claimsFor("user_a", time.Hour), secret)

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
	}{
		{"bearer header", "Bearer " + good, "", http.StatusOK},
		{"session cookie", "", good, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + good, "", http.StatusUnauthorized},
		{"bad token", "Bearer nope", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "__session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "user_a", w.Body.String())
			}
		})
	}
}
