// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the identity claims
// in Locals for the handlers downstream.
func AuthMiddleware(secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[WARN] Token parse failed:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is not valid")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("No authorization header provided")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if token == "" {
		return "", errors.New("No token is provided")
	}
	return token, nil
}
