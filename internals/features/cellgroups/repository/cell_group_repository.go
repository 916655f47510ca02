// internals/features/cellgroups/repository/cell_group_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	cellModel "minhaigreja_backend/internals/features/cellgroups/model"
)

func CreateCellGroup(tx *gorm.DB, g *cellModel.CellGroupModel) error {
	return tx.Create(g).Error
}

func FindCellGroupByID(tx *gorm.DB, id uuid.UUID) (*cellModel.CellGroupModel, error) {
	var g cellModel.CellGroupModel
	if err := tx.First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func ListCellGroups(tx *gorm.DB, onlyActive bool) ([]cellModel.CellGroupModel, error) {
	q := tx.Model(&cellModel.CellGroupModel{})
	if onlyActive {
		q = q.Where("is_active = true")
	}
	var groups []cellModel.CellGroupModel
	err := q.Order("name").Find(&groups).Error
	return groups, err
}

func UpdateCellGroup(tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	res := tx.Model(&cellModel.CellGroupModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateCellGroup desativa a célula e solta os membros vinculados.
func DeactivateCellGroup(tx *gorm.DB, id uuid.UUID) error {
	if err := UpdateCellGroup(tx, id, map[string]interface{}{
		"is_active":       false,
		"current_members": 0,
	}); err != nil {
		return err
	}
	return tx.Exec(`UPDATE members SET cell_group_id = NULL WHERE cell_group_id = ?`, id).Error
}
