package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"notary-api/internal/api/errors"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "user_id"

// AuthConfig configures bearer-token authentication.
type AuthConfig struct {
	// Secret is the HS256 signing secret shared with the identity provider.
	Secret string
	// Disabled skips token verification and injects DevUserID as the
	// request subject. Development only.
	Disabled  bool
	DevUserID uuid.UUID
}

type accessClaims struct {
	jwt.RegisteredClaims
}

// JWTAuth validates the Authorization bearer token and stores the subject
// claim as the request user ID.
func JWTAuth(config AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Disabled {
			c.Set(ContextUserID, config.DevUserID.String())
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			HandleError(c, errors.NewUnauthorizedError("missing bearer token"))
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if raw == "" {
			HandleError(c, errors.NewUnauthorizedError("missing bearer token"))
			return
		}

		claims := &accessClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(config.Secret), nil
		})
		if err != nil || !tok.Valid {
			HandleError(c, errors.NewUnauthorizedError("invalid token"))
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			HandleError(c, errors.NewUnauthorizedError("token has no subject"))
			return
		}
		if _, err := uuid.Parse(subject); err != nil {
			HandleError(c, errors.NewUnauthorizedError("token subject is not a user ID"))
			return
		}

		c.Set(ContextUserID, subject)
		c.Next()
	}
}

// UserID returns the authenticated user ID from the context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ContextUserID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
