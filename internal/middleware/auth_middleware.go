package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/Leonguyenbk/QLCV/internal/auth/errors"
	"github.com/Leonguyenbk/QLCV/internal/shared/response"
)

// AuthMiddleware validates the bearer token (header or cookie) and copies
// the identity claims onto the gin context for the authz gate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		systemRole, ok := claims["system_role"].(string)
		if !ok || systemRole == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "System role not found in token", nil)
			c.Abort()
			return
		}

		// Optional claims: a user without a linked employee has none of
		// these.
		employeeID, _ := claims["employee_id"].(string)
		departmentID, _ := claims["department_id"].(string)
		orgRole, _ := claims["org_role"].(string)

		c.Set("user_id", userID)
		c.Set("system_role", systemRole)
		c.Set("employee_id", employeeID)
		c.Set("department_id", departmentID)
		c.Set("org_role", orgRole)

		c.Next()
	}
}
