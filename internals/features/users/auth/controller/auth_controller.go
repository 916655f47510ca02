// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "minhaigreja_backend/internals/features/users/auth/repository"
	authService "minhaigreja_backend/internals/features/users/auth/service"
	helper "minhaigreja_backend/internals/helpers"

	database "minhaigreja_backend/internals/databases"
)

type AuthController struct {
	Registry *database.Registry
}

func NewAuthController(reg *database.Registry) *AuthController {
	return &AuthController{Registry: reg}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	db, err := ac.Registry.Shared()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível")
	}
	return authService.Login(db, c)
}

func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	db, err := ac.Registry.Shared()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível")
	}
	return authService.RefreshToken(db, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	db, err := ac.Registry.Shared()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível")
	}
	return authService.Logout(db, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	db, err := ac.Registry.Shared()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível")
	}
	return authService.ChangePassword(db, c)
}

// Me devolve o perfil do usuário autenticado.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db, err := ac.Registry.Shared()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"church_id":  user.ChurchID,
		"is_active":  user.IsActive,
		"last_login": user.LastLogin,
	})
}
