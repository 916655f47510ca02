// internals/features/chat/controller/chat_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	chatModel "minhaigreja_backend/internals/features/chat/model"
	chatRepo "minhaigreja_backend/internals/features/chat/repository"
	helper "minhaigreja_backend/internals/helpers"
	tenantMw "minhaigreja_backend/internals/middlewares/tenant"
)

type ChatController struct {
	Registry *database.Registry
}

func NewChatController(reg *database.Registry) *ChatController {
	return &ChatController{Registry: reg}
}

func senderFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// Send — POST /api/chat/messages
// Direta (receiver_id) ou de grupo (group_id); exatamente um dos dois.
func (cc *ChatController) Send(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	senderID, err := senderFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req struct {
		ReceiverID string `json:"receiver_id"`
		GroupID    string `json:"group_id"`
		Content    string `json:"content"`
		FileURL    string `json:"file_url"`
		FileName   string `json:"file_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" && req.FileURL == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"content": {"Mensagem vazia"},
		})
	}
	if (req.ReceiverID == "") == (req.GroupID == "") {
		return helper.JsonValidationError(c, map[string][]string{
			"receiver_id": {"Informe receiver_id OU group_id"},
		})
	}

	msg := &chatModel.ChatMessageModel{
		SenderID: senderID,
		Content:  req.Content,
		Type:     chatModel.TypeText,
		FileURL:  req.FileURL,
		FileName: req.FileName,
	}
	if req.FileName != "" {
		msg.Type = constants.DetectChatTypeFromExt(req.FileName)
	}
	if req.ReceiverID != "" {
		receiverID, perr := uuid.Parse(req.ReceiverID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "receiver_id inválido")
		}
		msg.ReceiverID = &receiverID
	} else {
		groupID, perr := uuid.Parse(req.GroupID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id inválido")
		}
		msg.GroupID = &groupID
	}

	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		return chatRepo.CreateMessage(tx, msg)
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonCreated(c, "Mensagem enviada", msg)
}

// Conversation — GET /api/chat/messages/with/:userId?limit=
func (cc *ChatController) Conversation(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	readerID, err := senderFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	otherID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de usuário inválido")
	}

	var messages []chatModel.ChatMessageModel
	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		messages, ferr = chatRepo.ListDirectMessages(tx, readerID, otherID, c.QueryInt("limit", 50))
		if ferr != nil {
			return ferr
		}
		// abrir a conversa marca como lida
		_, ferr = chatRepo.MarkConversationRead(tx, readerID, otherID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", messages, nil)
}

// GroupMessages — GET /api/chat/messages/group/:groupId?limit=
func (cc *ChatController) GroupMessages(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de grupo inválido")
	}

	var messages []chatModel.ChatMessageModel
	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		messages, ferr = chatRepo.ListGroupMessages(tx, groupID, c.QueryInt("limit", 50))
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonList(c, "", messages, nil)
}

// UnreadCount — GET /api/chat/unread
func (cc *ChatController) UnreadCount(c *fiber.Ctx) error {
	churchID, err := tenantMw.ActiveChurchID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma igreja ativa nesta requisição")
	}
	readerID, err := senderFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var count int64
	err = cc.Registry.WithTenant(c.UserContext(), churchID, func(tx *gorm.DB) error {
		var ferr error
		count, ferr = chatRepo.CountUnread(tx, readerID)
		return ferr
	})
	if err != nil {
		return helper.JsonFromError(c, helper.FromDBError(err))
	}
	return helper.JsonOK(c, "", fiber.Map{"unread": count})
}
