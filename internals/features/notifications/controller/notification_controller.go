// internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "minhaigreja_backend/internals/databases"
	notifModel "minhaigreja_backend/internals/features/notifications/model"
	notifRepo "minhaigreja_backend/internals/features/notifications/repository"
	helper "minhaigreja_backend/internals/helpers"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

var validNotifTypes = map[string]bool{
	notifModel.TypeInfo:    true,
	notifModel.TypeWarning: true,
	notifModel.TypeError:   true,
	notifModel.TypeSuccess: true,
}

type NotificationController struct {
	Registry *database.Registry
}

func NewNotificationController(reg *database.Registry) *NotificationController {
	return &NotificationController{Registry: reg}
}

// Create — POST /api/notifications (leader+)
// Envia uma notificação para um usuário da igreja ativa.
func (nc *NotificationController) Create(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}

	var req struct {
		UserID    string `json:"user_id"`
		Title     string `json:"title"`
		Message   string `json:"message"`
		Type      string `json:"type"`
		ActionURL string `json:"action_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Message = strings.TrimSpace(req.Message)
	fieldErrors := map[string][]string{}
	userID, perr := uuid.Parse(req.UserID)
	if perr != nil {
		fieldErrors["user_id"] = append(fieldErrors["user_id"], "UUID inválido")
	}
	if req.Title == "" {
		fieldErrors["title"] = append(fieldErrors["title"], "Título é obrigatório")
	}
	if req.Message == "" {
		fieldErrors["message"] = append(fieldErrors["message"], "Mensagem é obrigatória")
	}
	if req.Type == "" {
		req.Type = notifModel.TypeInfo
	} else if !validNotifTypes[req.Type] {
		fieldErrors["type"] = append(fieldErrors["type"], "Tipo deve ser: info, warning, error ou success")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	notif := &notifModel.NotificationModel{
		UserID:    userID,
		ChurchID:  churchID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		ActionURL: req.ActionURL,
	}
	err = nc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return notifRepo.CreateNotification(tx, notif)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Notificação enviada", notif)
}

// List — GET /api/notifications?unread=&limit=
func (nc *NotificationController) List(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var notifs []notifModel.NotificationModel
	err = nc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		notifs, ferr = notifRepo.ListNotifications(tx, userID, c.QueryBool("unread", false), c.QueryInt("limit", 50))
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", notifs, nil)
}

// MarkRead — PATCH /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de notificação inválido")
	}

	err = nc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return notifRepo.MarkNotificationRead(tx, userID, notifID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
		}
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonUpdated(c, "Notificação lida", fiber.Map{"id": notifID})
}

// MarkAllRead — PATCH /api/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var updated int64
	err = nc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		updated, ferr = notifRepo.MarkAllRead(tx, userID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonUpdated(c, "Notificações marcadas como lidas", fiber.Map{"updated": updated})
}
