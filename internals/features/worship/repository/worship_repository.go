// internals/features/worship/repository/worship_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	worshipModel "minhaigreja_backend/internals/features/worship/model"
)

/* ====================== TEAMS ====================== */

func CreateTeam(tx *gorm.DB, t *worshipModel.WorshipTeamModel) error {
	return tx.Create(t).Error
}

func FindTeamByID(tx *gorm.DB, id uuid.UUID) (*worshipModel.WorshipTeamModel, error) {
	var t worshipModel.WorshipTeamModel
	if err := tx.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func ListTeams(tx *gorm.DB) ([]worshipModel.WorshipTeamModel, error) {
	var teams []worshipModel.WorshipTeamModel
	err := tx.Where("is_active = true").Order("name").Find(&teams).Error
	return teams, err
}

func AddTeamMember(tx *gorm.DB, tm *worshipModel.WorshipTeamMemberModel) error {
	return tx.Create(tm).Error
}

func ListTeamMembers(tx *gorm.DB, teamID uuid.UUID) ([]worshipModel.WorshipTeamMemberModel, error) {
	var members []worshipModel.WorshipTeamMemberModel
	err := tx.Where("team_id = ? AND is_active = true", teamID).Find(&members).Error
	return members, err
}

func RemoveTeamMember(tx *gorm.DB, teamID, memberID uuid.UUID) error {
	res := tx.Model(&worshipModel.WorshipTeamMemberModel{}).
		Where("team_id = ? AND member_id = ? AND is_active = true", teamID, memberID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ====================== SONGS ====================== */

func CreateSong(tx *gorm.DB, s *worshipModel.SongModel) error {
	return tx.Create(s).Error
}

func ListSongs(tx *gorm.DB, search string) ([]worshipModel.SongModel, error) {
	q := tx.Model(&worshipModel.SongModel{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR artist ILIKE ?", like, like)
	}
	var songs []worshipModel.SongModel
	err := q.Order("title").Find(&songs).Error
	return songs, err
}

func FindSongByID(tx *gorm.DB, id uuid.UUID) (*worshipModel.SongModel, error) {
	var s worshipModel.SongModel
	if err := tx.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

/* ====================== SETLISTS ====================== */

func CreateSetlist(tx *gorm.DB, sl *worshipModel.SetlistModel) error {
	return tx.Create(sl).Error
}

// FindSetlistByID carrega o repertório com as músicas em ordem.
func FindSetlistByID(tx *gorm.DB, id uuid.UUID) (*worshipModel.SetlistModel, error) {
	var sl worshipModel.SetlistModel
	err := tx.Preload("Songs", func(db *gorm.DB) *gorm.DB {
		return db.Order("song_order")
	}).First(&sl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

func ListSetlists(tx *gorm.DB) ([]worshipModel.SetlistModel, error) {
	var setlists []worshipModel.SetlistModel
	err := tx.Order("event_date DESC").Find(&setlists).Error
	return setlists, err
}

// ReplaceSetlistSongs troca o repertório inteiro de uma vez (ordem incluída).
func ReplaceSetlistSongs(tx *gorm.DB, setlistID uuid.UUID, songs []worshipModel.SetlistSongModel) error {
	if err := tx.Where("setlist_id = ?", setlistID).Delete(&worshipModel.SetlistSongModel{}).Error; err != nil {
		return err
	}
	if len(songs) == 0 {
		return nil
	}
	for i := range songs {
		songs[i].SetlistID = setlistID
		songs[i].SongOrder = i + 1
	}
	return tx.Create(&songs).Error
}
