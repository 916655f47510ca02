// internals/features/chat/repository/chat_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	chatModel "minhaigreja_backend/internals/features/chat/model"
)

func CreateMessage(tx *gorm.DB, m *chatModel.ChatMessageModel) error {
	return tx.Create(m).Error
}

// ListDirectMessages devolve a conversa entre dois usuários, mais recente primeiro.
func ListDirectMessages(tx *gorm.DB, userA, userB uuid.UUID, limit int) ([]chatModel.ChatMessageModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var messages []chatModel.ChatMessageModel
	err := tx.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func ListGroupMessages(tx *gorm.DB, groupID uuid.UUID, limit int) ([]chatModel.ChatMessageModel, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var messages []chatModel.ChatMessageModel
	err := tx.Where("group_id = ?", groupID).Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

// MarkConversationRead marca como lidas as mensagens recebidas de um remetente.
func MarkConversationRead(tx *gorm.DB, readerID, senderID uuid.UUID) (int64, error) {
	res := tx.Model(&chatModel.ChatMessageModel{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = false", readerID, senderID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func CountUnread(tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&chatModel.ChatMessageModel{}).
		Where("receiver_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}
