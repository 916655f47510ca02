// internals/features/cellgroups/controller/cell_group_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	cellDTO "minhaigreja_backend/internals/features/cellgroups/dto"
	cellModel "minhaigreja_backend/internals/features/cellgroups/model"
	cellRepo "minhaigreja_backend/internals/features/cellgroups/repository"
	helper "minhaigreja_backend/internals/helpers"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

type CellGroupController struct {
	Registry *database.Registry
}

func NewCellGroupController(reg *database.Registry) *CellGroupController {
	return &CellGroupController{Registry: reg}
}

// Create — POST /api/cell-groups (leader+)
func (cc *CellGroupController) Create(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req cellDTO.CreateCellGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	leaderID, _ := uuid.Parse(req.LeaderID)
	group := &cellModel.CellGroupModel{
		ChurchID:    churchID,
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    leaderID,
		Address:     datatypes.JSON(req.Address),
		MeetingDay:  req.MeetingDay,
		MeetingTime: req.MeetingTime,
		IsActive:    true,
		MaxMembers:  req.MaxMembers,
	}
	if req.CoLeaderID != "" {
		coID, perr := uuid.Parse(req.CoLeaderID)
		if perr == nil {
			group.CoLeaderID = &coID
		}
	}

	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return cellRepo.CreateCellGroup(tx, group)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Célula criada", group)
}

// List — GET /api/cell-groups
func (cc *CellGroupController) List(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var groups []cellModel.CellGroupModel
	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		groups, ferr = cellRepo.ListCellGroups(tx, !c.QueryBool("include_inactive", false))
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", groups, nil)
}

// ByID — GET /api/cell-groups/:id
func (cc *CellGroupController) ByID(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de célula inválido")
	}

	var group *cellModel.CellGroupModel
	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		group, ferr = cellRepo.FindCellGroupByID(tx, groupID)
		return ferr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonOK(c, "", group)
}

// Update — PATCH /api/cell-groups/:id (leader+)
func (cc *CellGroupController) Update(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de célula inválido")
	}

	var req cellDTO.UpdateCellGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.LeaderID != nil {
		if leaderID, perr := uuid.Parse(*req.LeaderID); perr == nil {
			updates["leader_id"] = leaderID
		}
	}
	if req.CoLeaderID != nil {
		if coID, perr := uuid.Parse(*req.CoLeaderID); perr == nil {
			updates["co_leader_id"] = coID
		}
	}
	if req.Address != nil {
		updates["address"] = datatypes.JSON(req.Address)
	}
	if req.MeetingDay != nil {
		updates["meeting_day"] = *req.MeetingDay
	}
	if req.MeetingTime != nil {
		updates["meeting_time"] = *req.MeetingTime
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.MaxMembers != nil {
		updates["max_members"] = *req.MaxMembers
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return cellRepo.UpdateCellGroup(tx, groupID, updates)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonUpdated(c, "Célula atualizada", fiber.Map{"id": groupID})
}

// Deactivate — DELETE /api/cell-groups/:id (church_admin+)
func (cc *CellGroupController) Deactivate(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de célula inválido")
	}

	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return cellRepo.DeactivateCellGroup(tx, groupID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonDeleted(c, "Célula desativada", fiber.Map{"id": groupID})
}
