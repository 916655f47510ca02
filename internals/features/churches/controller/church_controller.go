package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	churchDTO "minhaigreja_backend/internals/features/churches/dto"
	churchModel "minhaigreja_backend/internals/features/churches/model"
	"minhaigreja_backend/internals/features/churches/service"
	lgpdService "minhaigreja_backend/internals/features/lgpd/service"
	helper "minhaigreja_backend/internals/helpers"
)

type ChurchController struct {
	Registry *database.Registry
}

func NewChurchController(reg *database.Registry) *ChurchController {
	return &ChurchController{Registry: reg}
}

// Register — POST /api/churches/register
func (cc *ChurchController) Register(c *fiber.Ctx) error {
	var req churchDTO.RegisterChurchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	resp, err := service.RegisterChurch(c.UserContext(), cc.Registry, &req, c.IP(), c.Get("User-Agent"))
	switch {
	case errors.Is(err, helper.ErrPartialProvisioning):
		// commit ok, schema pendente: estado recuperável, não é falha do cadastro
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"success": true,
			"message": resp.Message,
			"data":    resp,
		})
	case errors.Is(err, helper.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, "Subdomínio ou email do administrador já está em uso")
	case err != nil:
		return helper.JsonFromError(c, err)
	}

	lgpdService.LogUserActivity(c.UserContext(), cc.Registry, resp.AdminUserID,
		"church.register", "church", resp.ChurchID, nil,
		map[string]any{"subdomain": resp.Subdomain}, &resp.ChurchID, c.IP(), c.Get("User-Agent"))

	return helper.JsonCreated(c, resp.Message, resp)
}

// BySubdomain — GET /api/churches/by-subdomain/:subdomain
func (cc *ChurchController) BySubdomain(c *fiber.Ctx) error {
	church, err := service.ResolveChurchBySubdomain(c.UserContext(), cc.Registry, c.Params("subdomain"))
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Igreja não encontrada")
		}
		return helper.JsonFromError(c, err)
	}
	if church == nil {
		// subdomínio reservado: fluxo do plano de controle, sem tenant
		return helper.JsonOK(c, "sem contexto de igreja", nil)
	}
	return helper.JsonOK(c, "", churchDTO.ChurchResponse{
		ID:                 church.ID,
		Name:               church.Name,
		Subdomain:          church.Subdomain,
		Email:              church.Email,
		Phone:              church.Phone,
		SubscriptionStatus: church.SubscriptionStatus,
		MemberCount:        church.MemberCount,
		IsActive:           church.IsActive,
	})
}

// List — GET /api/admin/churches (super_admin)
func (cc *ChurchController) List(c *fiber.Ctx) error {
	var churches []churchModel.ChurchModel
	err := cc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		return tx.Order("created_at DESC").Find(&churches).Error
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", churches, nil)
}

// RepairSchema — POST /api/admin/churches/:id/repair-schema (super_admin)
// Re-executa o provisionamento idempotente do schema do tenant.
func (cc *ChurchController) RepairSchema(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de igreja inválido")
	}
	if err := service.RepairChurchSchema(c.UserContext(), cc.Registry, churchID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Schema da igreja provisionado", fiber.Map{"church_id": churchID})
}

// Delete — DELETE /api/admin/churches/:id (super_admin)
// Remove a igreja do registro e derruba o schema com todos os dados.
func (cc *ChurchController) Delete(c *fiber.Ctx) error {
	churchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de igreja inválido")
	}
	if err := service.RemoveChurch(c.UserContext(), cc.Registry, churchID); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Igreja não encontrada")
		}
		return helper.JsonFromError(c, err)
	}

	if userID, ok := c.Locals("user_id").(string); ok {
		if uid, perr := uuid.Parse(userID); perr == nil {
			lgpdService.LogUserActivity(c.UserContext(), cc.Registry, uid,
				"church.delete", "church", churchID, nil, nil, nil, c.IP(), c.Get("User-Agent"))
		}
	}
	return helper.JsonDeleted(c, "Igreja removida definitivamente", fiber.Map{"church_id": churchID})
}
