// internals/features/members/repository/member_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "minhaigreja_backend/internals/features/members/model"
)

// Todas as funções recebem um tx já preso ao schema do tenant
// (Registry.WithTenant). Nenhuma query aqui qualifica schema.

func CreateMember(tx *gorm.DB, m *memberModel.MemberModel) error {
	return tx.Create(m).Error
}

func FindMemberByID(tx *gorm.DB, id uuid.UUID) (*memberModel.MemberModel, error) {
	var m memberModel.MemberModel
	if err := tx.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func ListMembers(tx *gorm.DB, onlyActive bool, search string, limit, offset int) ([]memberModel.MemberModel, int64, error) {
	q := tx.Model(&memberModel.MemberModel{})
	if onlyActive {
		q = q.Where("is_active = true")
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []memberModel.MemberModel
	err := q.Order("first_name, last_name").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

func UpdateMember(tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	res := tx.Model(&memberModel.MemberModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateMember é o "delete" padrão: membro sai do rol mas o histórico fica.
func DeactivateMember(tx *gorm.DB, id uuid.UUID) error {
	return UpdateMember(tx, id, map[string]interface{}{"is_active": false})
}

// AssignCellGroup muda o vínculo de célula e mantém os contadores
// current_members dos grupos envolvidos.
func AssignCellGroup(tx *gorm.DB, memberID uuid.UUID, cellGroupID *uuid.UUID) error {
	m, err := FindMemberByID(tx, memberID)
	if err != nil {
		return err
	}

	if err := tx.Model(&memberModel.MemberModel{}).
		Where("id = ?", memberID).
		Update("cell_group_id", cellGroupID).Error; err != nil {
		return err
	}

	if m.CellGroupID != nil {
		if err := tx.Exec(`UPDATE cell_groups SET current_members = GREATEST(current_members - 1, 0) WHERE id = ?`,
			*m.CellGroupID).Error; err != nil {
			return err
		}
	}
	if cellGroupID != nil {
		if err := tx.Exec(`UPDATE cell_groups SET current_members = current_members + 1 WHERE id = ?`,
			*cellGroupID).Error; err != nil {
			return err
		}
	}
	return nil
}

func CountActiveMembers(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&memberModel.MemberModel{}).Where("is_active = true").Count(&count).Error
	return count, err
}
