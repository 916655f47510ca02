// internals/features/worship/model/worship_models.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type WorshipTeamModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID    uuid.UUID `gorm:"type:uuid;not null" json:"church_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	LeaderID    uuid.UUID `gorm:"type:uuid;not null" json:"leader_id"`
	Ministry    string    `gorm:"size:100;not null" json:"ministry"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorshipTeamModel) TableName() string {
	return "worship_teams"
}

type WorshipTeamMemberModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeamID       uuid.UUID      `gorm:"type:uuid;not null" json:"team_id"`
	MemberID     uuid.UUID      `gorm:"type:uuid;not null" json:"member_id"`
	Role         string         `gorm:"size:100;not null" json:"role"`
	Instrument   string         `gorm:"size:100" json:"instrument,omitempty"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	Availability datatypes.JSON `gorm:"type:jsonb" json:"availability,omitempty"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (WorshipTeamMemberModel) TableName() string {
	return "worship_team_members"
}

type SongModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID   uuid.UUID      `gorm:"type:uuid;not null" json:"church_id"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Artist     string         `gorm:"size:255" json:"artist,omitempty"`
	Key        string         `gorm:"size:10" json:"key,omitempty"`
	Tempo      *int           `json:"tempo,omitempty"`
	Genre      string         `gorm:"size:100" json:"genre,omitempty"`
	Lyrics     string         `gorm:"type:text" json:"lyrics,omitempty"`
	Chords     string         `gorm:"type:text" json:"chords,omitempty"`
	CcliNumber string         `gorm:"size:50;column:ccli_number" json:"ccli_number,omitempty"`
	Duration   *int           `json:"duration,omitempty"`
	Difficulty string         `gorm:"size:20" json:"difficulty,omitempty"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SongModel) TableName() string {
	return "songs"
}

type SetlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null" json:"church_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	EventDate time.Time `gorm:"type:date;not null" json:"event_date"`
	EventType string    `gorm:"size:100;not null" json:"event_type"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null" json:"team_id"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Songs []SetlistSongModel `gorm:"foreignKey:SetlistID" json:"songs,omitempty"`
}

func (SetlistModel) TableName() string {
	return "setlists"
}

type SetlistSongModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SetlistID uuid.UUID `gorm:"type:uuid;not null" json:"setlist_id"`
	SongID    uuid.UUID `gorm:"type:uuid;not null" json:"song_id"`
	SongOrder int       `gorm:"not null" json:"song_order"`
	Key       string    `gorm:"size:10" json:"key,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
}

func (SetlistSongModel) TableName() string {
	return "setlist_songs"
}
