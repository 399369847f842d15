package middleware

import (
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/campus-helpdesk/pkg/response"
	"github.com/linskybing/campus-helpdesk/pkg/types"
	"github.com/linskybing/campus-helpdesk/pkg/utils"
)

// Verifier checks tokens issued by the identity provider. It accepts RS256
// when a public key is configured and HS256 otherwise.
type Verifier struct {
	issuer  string
	hmacKey []byte
	rsaKey  *rsa.PublicKey
}

func NewVerifier(issuer, hmacSecret, publicKeyPEM string) (*Verifier, error) {
	v := &Verifier{issuer: issuer}
	if strings.TrimSpace(publicKeyPEM) != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, err
		}
		v.rsaKey = key
		return v, nil
	}
	if hmacSecret == "" {
		return nil, errors.New("either IDP_PUBLIC_KEY_PEM or IDP_HMAC_SECRET must be set")
	}
	v.hmacKey = []byte(hmacSecret)
	return v, nil
}

// ParseToken validates signature, expiry and issuer and returns the claims.
func (v *Verifier) ParseToken(tokenStr string) (*types.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.rsaKey != nil {
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	} else {
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	}

	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if v.rsaKey != nil {
			return v.rsaKey, nil
		}
		return v.hmacKey, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// JWTAuthMiddleware validates the Bearer token in the Authorization header
// or the session cookie.
func JWTAuthMiddleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		} else if cookie, err := c.Cookie("__session"); err == nil {
			tokenStr = cookie
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
			return
		}

		claims, err := v.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}
