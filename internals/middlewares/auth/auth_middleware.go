// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
	database "minhaigreja_backend/internals/databases"
	authModel "minhaigreja_backend/internals/features/users/auth/model"
)

// AuthMiddleware valida o access token e popula o contexto da requisição:
// user_id, userRole e church_id (quando o papel tem vínculo).
func AuthMiddleware(reg *database.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		db, err := reg.Shared()
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Banco indisponível")
		}

		// token deslogado não entra
		var blacklisted authModel.TokenBlacklistModel
		if err := db.Where("token = ?", tokenString).First(&blacklisted).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token revogado")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] erro ao checar blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de assinatura inesperado")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sem user_id válido")
		}

		c.Locals("user_id", userID.String())
		if role, ok := claims["role"].(string); ok {
			c.Locals("userRole", role)
		}
		if churchID, ok := claims["church_id"].(string); ok && churchID != "" {
			c.Locals("church_id", churchID)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("header Authorization malformado")
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("credencial ausente")
}

// RemainingTTL devolve quanto falta para o token expirar (para blacklist
// no logout). Token sem exp → TTL zero.
func RemainingTTL(tokenString, secret string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return 0
	}
	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	ttl := time.Until(time.Unix(int64(expFloat), 0))
	if ttl < 0 {
		return 0
	}
	return ttl
}
