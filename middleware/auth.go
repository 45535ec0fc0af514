package middleware

import (
	"strings"

	"project-board/helper"
	"project-board/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const UserIDKey = "user_id"

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// AuthMiddleware rejects requests without a valid bearer token. The token's
// user id becomes the auditor of everything the request writes.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, msg := parseBearer(authHeader, secret)
		if claims == nil {
			HTTPHelper.SendUnauthorizedError(c, msg, HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		authenticate(c, claims)
		c.Next()
	}
}

// OptionalAuth authenticates the request when it carries a valid token and
// lets it through anonymously otherwise.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, _ := parseBearer(authHeader, secret); claims != nil {
				authenticate(c, claims)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

func authenticate(c *gin.Context, claims *Claims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set("nickname", claims.Nickname)
	c.Request = c.Request.WithContext(models.WithAuditor(c.Request.Context(), claims.UserID))
}

func parseBearer(authHeader string, secret []byte) (*Claims, string) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, "Bearer token required"
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, "Invalid token: " + err.Error()
	}
	if !token.Valid || claims.UserID == "" {
		return nil, "Token is not valid"
	}
	return claims, ""
}
