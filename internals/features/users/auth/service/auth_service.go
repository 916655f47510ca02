// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "minhaigreja_backend/internals/features/users/auth/model"
	authRepo "minhaigreja_backend/internals/features/users/auth/repository"
	helper "minhaigreja_backend/internals/helpers"
	authHelper "minhaigreja_backend/internals/helpers/auth"
	authMw "minhaigreja_backend/internals/middlewares/auth"

	"minhaigreja_backend/internals/configs"
)

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Email e senha são obrigatórios")
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mesma mensagem de senha errada: não vazar quais emails existem
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if err := authHelper.CheckPasswordHash(user.PasswordHash, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	accessToken, err := IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir token")
	}
	refreshToken, err := IssueRefreshToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir refresh token")
	}
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     ComputeRefreshHash(refreshToken),
		ExpiresAt: time.Now().UTC().Add(RefreshTTL()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar sessão")
	}

	if err := authRepo.TouchLastLogin(db, user.ID); err != nil {
		log.Printf("[LOGIN] ⚠️ falha ao atualizar last_login: %v", err)
	}

	setRefreshCookie(c, refreshToken)
	return helper.JsonOK(c, "Login realizado com sucesso", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"church_id": user.ChurchID,
		},
	})
}

// ========================== REFRESH ==========================
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	userID, err := ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// o hash precisa existir no banco (sessão não revogada)
	hash := ComputeRefreshHash(refreshCookie)
	exists, err := authRepo.RefreshTokenExists(db, hash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconhecido")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	// ROTATE: apaga o antigo antes de emitir o novo
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[REFRESH] ⚠️ falha ao apagar hash antigo: %v", err)
	}

	accessToken, err := IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir token")
	}
	newRefresh, err := IssueRefreshToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir refresh token")
	}
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     ComputeRefreshHash(newRefresh),
		ExpiresAt: time.Now().UTC().Add(RefreshTTL()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar sessão")
	}

	setRefreshCookie(c, newRefresh)
	return helper.JsonOK(c, "Token renovado", fiber.Map{"access_token": accessToken})
}

// ========================== LOGOUT ==========================
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// access token vai para a blacklist até expirar
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		ttl := authMw.RemainingTTL(parts[1], configs.JWTSecret)
		if ttl > 0 {
			if err := authRepo.BlacklistToken(db, parts[1], ttl); err != nil {
				log.Printf("[LOGOUT] ⚠️ falha ao blacklistar token: %v", err)
			}
		}
	}

	// refresh token da sessão morre junto
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if err := authRepo.DeleteRefreshTokenByHash(db, ComputeRefreshHash(refreshCookie)); err != nil {
			log.Printf("[LOGOUT] ⚠️ falha ao apagar refresh token: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logout realizado", nil)
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Senha deve ter pelo menos 8 caracteres")
	}

	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if err := authHelper.CheckPasswordHash(user.PasswordHash, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da nova senha")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar senha")
	}

	// derruba todas as sessões antigas
	if err := authRepo.DeleteRefreshTokensByUser(db, userID); err != nil {
		log.Printf("[PASSWORD] ⚠️ falha ao revogar sessões: %v", err)
	}

	return helper.JsonUpdated(c, "Senha alterada com sucesso", nil)
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(RefreshTTL()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}
