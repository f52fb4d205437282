package middleware

import (
	"net/http"
	"strings"

	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const accountContextKey = "account"

// RequireAuth verifies the bearer token and resolves the subject account.
// A valid token whose account has since been deleted is rejected too.
func RequireAuth(accounts repositories.IAccountRepository, tokens *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logrus.Debug(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		account, err := accounts.GetByID(claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// RequireRole gates a route to the given roles; comparison ignores case.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := GetAccount(c)
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: no role found"})
			return
		}

		for _, role := range roles {
			if account.Role.Is(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Insufficient role"})
	}
}

// GetAccount returns the authenticated account set by RequireAuth.
func GetAccount(c *gin.Context) *models.Account {
	accountUn, exists := c.Get(accountContextKey)
	if exists {
		account, ok := accountUn.(*models.Account)
		if ok {
			return account
		}
	}

	return nil
}

// BearerToken pulls the token from the Authorization header, falling back
// to the token query parameter for the websocket upgrade path.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return c.Query("token")
}
