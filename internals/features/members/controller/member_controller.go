// internals/features/members/controller/member_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	memberDTO "minhaigreja_backend/internals/features/members/dto"
	memberModel "minhaigreja_backend/internals/features/members/model"
	memberRepo "minhaigreja_backend/internals/features/members/repository"
	memberService "minhaigreja_backend/internals/features/members/service"
	helper "minhaigreja_backend/internals/helpers"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

type MemberController struct {
	Registry *database.Registry
}

func NewMemberController(reg *database.Registry) *MemberController {
	return &MemberController{Registry: reg}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Create — POST /api/members (leader+)
func (mc *MemberController) Create(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req memberDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	member := &memberModel.MemberModel{
		ChurchID:    churchID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   parseDate(req.BirthDate),
		BaptismDate: parseDate(req.BaptismDate),
		IsActive:    true,
		Ministries:  req.Ministries,
	}
	if md := parseDate(req.MembershipDate); md != nil {
		member.MembershipDate = *md
	} else {
		member.MembershipDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return memberRepo.CreateMember(tx, member)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	memberService.SyncMemberCount(c.UserContext(), mc.Registry, churchID)
	return helper.JsonCreated(c, "Membro cadastrado", member)
}

// List — GET /api/members?search=&page=&per_page=&include_inactive=
func (mc *MemberController) List(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", 50)
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}
	onlyActive := !c.QueryBool("include_inactive", false)

	var members []memberModel.MemberModel
	var total int64
	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		members, total, ferr = memberRepo.ListMembers(tx, onlyActive, c.Query("search"), perPage, (page-1)*perPage)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	return helper.JsonList(c, "", members, fiber.Map{
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

// ByID — GET /api/members/:id
func (mc *MemberController) ByID(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de membro inválido")
	}

	var member *memberModel.MemberModel
	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		member, ferr = memberRepo.FindMemberByID(tx, memberID)
		return ferr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonOK(c, "", member)
}

// Update — PATCH /api/members/:id (leader+)
func (mc *MemberController) Update(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de membro inválido")
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Ministries != nil {
		updates["ministries"] = pq.StringArray(req.Ministries)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return memberRepo.UpdateMember(tx, memberID, updates)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	if req.IsActive != nil {
		memberService.SyncMemberCount(c.UserContext(), mc.Registry, churchID)
	}
	return helper.JsonUpdated(c, "Membro atualizado", fiber.Map{"id": memberID})
}

// Deactivate — DELETE /api/members/:id (church_admin+)
// Soft delete: o membro sai do rol ativo, o histórico permanece.
func (mc *MemberController) Deactivate(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de membro inválido")
	}

	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return memberRepo.DeactivateMember(tx, memberID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	memberService.SyncMemberCount(c.UserContext(), mc.Registry, churchID)
	return helper.JsonDeleted(c, "Membro desativado", fiber.Map{"id": memberID})
}

// AssignCellGroup — PATCH /api/members/:id/cell-group (leader+)
func (mc *MemberController) AssignCellGroup(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de membro inválido")
	}

	var req memberDTO.AssignCellGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	var cellGroupID *uuid.UUID
	if req.CellGroupID != nil && *req.CellGroupID != "" {
		parsed, perr := uuid.Parse(*req.CellGroupID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID de célula inválido")
		}
		cellGroupID = &parsed
	}

	err = mc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return memberRepo.AssignCellGroup(tx, memberID, cellGroupID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonUpdated(c, "Vínculo de célula atualizado", fiber.Map{
		"id":            memberID,
		"cell_group_id": cellGroupID,
	})
}
