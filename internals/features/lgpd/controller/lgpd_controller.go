// internals/features/lgpd/controller/lgpd_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	lgpdDTO "minhaigreja_backend/internals/features/lgpd/dto"
	lgpdModel "minhaigreja_backend/internals/features/lgpd/model"
	lgpdRepo "minhaigreja_backend/internals/features/lgpd/repository"
	lgpdService "minhaigreja_backend/internals/features/lgpd/service"
	helper "minhaigreja_backend/internals/helpers"
)

type LgpdController struct {
	Registry *database.Registry
}

func NewLgpdController(reg *database.Registry) *LgpdController {
	return &LgpdController{Registry: reg}
}

func (lc *LgpdController) currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// CreateDataRequest — POST /api/lgpd/data-requests
// Abre uma solicitação de direitos do titular (acesso, exclusão,
// portabilidade ou retificação).
func (lc *LgpdController) CreateDataRequest(c *fiber.Ctx) error {
	userID, err := lc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	churchRaw, _ := c.Locals("church_id").(string)
	churchID, err := uuid.Parse(churchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Usuário sem igreja vinculada")
	}

	var req lgpdDTO.CreateDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	dr := &lgpdModel.DataRequestModel{
		UserID:   userID,
		ChurchID: churchID,
		Type:     req.Type,
		Status:   lgpdModel.DataRequestPending,
		Notes:    req.Notes,
	}

	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		return lgpdRepo.CreateDataRequest(tx, dr)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	lgpdService.LogUserActivity(c.UserContext(), lc.Registry, userID,
		"lgpd.data_request.create", "data_request", dr.ID, nil,
		map[string]any{"type": dr.Type}, &churchID, c.IP(), c.Get("User-Agent"))

	return helper.JsonCreated(c, "Solicitação registrada", dr)
}

// MyDataRequests — GET /api/lgpd/data-requests
func (lc *LgpdController) MyDataRequests(c *fiber.Ctx) error {
	userID, err := lc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reqs []lgpdModel.DataRequestModel
	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		reqs, ferr = lgpdRepo.ListDataRequestsByUser(tx, userID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", reqs, nil)
}

// ChurchDataRequests — GET /api/lgpd/church/data-requests (church_admin+)
func (lc *LgpdController) ChurchDataRequests(c *fiber.Ctx) error {
	churchRaw, _ := c.Locals("church_id").(string)
	churchID, err := uuid.Parse(churchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Usuário sem igreja vinculada")
	}

	var reqs []lgpdModel.DataRequestModel
	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		reqs, ferr = lgpdRepo.ListDataRequestsByChurch(tx, churchID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", reqs, nil)
}

// UpdateDataRequest — PATCH /api/lgpd/church/data-requests/:id (church_admin+)
func (lc *LgpdController) UpdateDataRequest(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de solicitação inválido")
	}

	var req lgpdDTO.UpdateDataRequestStatus
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	churchRaw, _ := c.Locals("church_id").(string)
	churchID, err := uuid.Parse(churchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Usuário sem igreja vinculada")
	}

	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		// admin só mexe em solicitações da própria igreja
		dr, ferr := lgpdRepo.FindDataRequestByID(tx, requestID)
		if ferr != nil {
			return ferr
		}
		if dr.ChurchID != churchID {
			return gorm.ErrRecordNotFound
		}
		return lgpdRepo.UpdateDataRequestStatus(tx, requestID, req.Status, req.Notes)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Solicitação não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}

	return helper.JsonUpdated(c, "Solicitação atualizada", fiber.Map{"id": requestID, "status": req.Status})
}

// MyConsents — GET /api/lgpd/consents
func (lc *LgpdController) MyConsents(c *fiber.Ctx) error {
	userID, err := lc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var consents []lgpdModel.ConsentRecordModel
	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		consents, ferr = lgpdRepo.ListConsentsByUser(tx, userID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", consents, nil)
}

// WithdrawConsent — POST /api/lgpd/consents/withdraw
// Marca withdrawn_date; o registro original permanece intacto.
func (lc *LgpdController) WithdrawConsent(c *fiber.Ctx) error {
	userID, err := lc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req lgpdDTO.WithdrawConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if req.Purpose == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"purpose": {"Propósito é obrigatório"},
		})
	}

	var affected int64
	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		affected, ferr = lgpdRepo.WithdrawConsent(tx, userID, req.Purpose)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhum consentimento ativo para esse propósito")
	}

	lgpdService.LogUserActivity(c.UserContext(), lc.Registry, userID,
		"lgpd.consent.withdraw", "consent_record", userID, nil,
		map[string]any{"purpose": req.Purpose}, nil, c.IP(), c.Get("User-Agent"))

	return helper.JsonUpdated(c, "Consentimento retirado", fiber.Map{"withdrawn": affected})
}

// ChurchAuditLogs — GET /api/lgpd/church/audit-logs (church_admin+)
func (lc *LgpdController) ChurchAuditLogs(c *fiber.Ctx) error {
	churchRaw, _ := c.Locals("church_id").(string)
	churchID, err := uuid.Parse(churchRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Usuário sem igreja vinculada")
	}

	var logs []lgpdModel.AuditLogModel
	err = lc.Registry.WithShared(c.UserContext(), func(tx *gorm.DB) error {
		var ferr error
		logs, ferr = lgpdRepo.ListAuditLogsByChurch(tx, churchID, c.QueryInt("limit", 100))
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", logs, nil)
}
