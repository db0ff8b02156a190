package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

const contextKeyUser = "current_user"

// UserResolver loads the account behind a verified token.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}

// RequireAuth returns a middleware that authenticates the request via a
// "Bearer <token>" Authorization header, resolves the account and stores it
// in the gin context. Any extraction, verification or resolution failure
// ends the request with the same 401 body; the reason is only logged.
func RequireAuth(tokens *TokenService, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			reject(c, "missing or malformed authorization header")
			return
		}
		userID, err := tokens.Verify(raw)
		if err != nil {
			reject(c, err.Error())
			return
		}
		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// Only a missing subject is an authorization failure; a
			// storage outage must not read as a bad token.
			if errors.Is(err, pgx.ErrNoRows) {
				reject(c, "token subject does not resolve to a user")
				return
			}
			logrus.WithError(err).Error("auth gate: user lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error during authorization",
			})
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

func reject(c *gin.Context, reason string) {
	logrus.WithField("reason", reason).Debug("request rejected by auth gate")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Not authorized, no token or invalid token",
	})
}

// bearerToken extracts the token from an Authorization header value. The
// "Bearer" scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
