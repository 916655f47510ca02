// internals/features/worship/dto/worship_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	LeaderID    string `json:"leader_id" validate:"required,uuid4"`
	Ministry    string `json:"ministry" validate:"required,max=100"`
}

func (r *CreateTeamRequest) Validate() map[string][]string {
	r.Name = strings.TrimSpace(r.Name)
	r.Ministry = strings.TrimSpace(r.Ministry)
	return validateStruct(r)
}

type AddTeamMemberRequest struct {
	MemberID   string   `json:"member_id" validate:"required,uuid4"`
	Role       string   `json:"role" validate:"required,max=100"`
	Instrument string   `json:"instrument" validate:"omitempty,max=100"`
	Skills     []string `json:"skills" validate:"omitempty,dive,max=100"`
}

func (r *AddTeamMemberRequest) Validate() map[string][]string {
	r.Role = strings.TrimSpace(r.Role)
	return validateStruct(r)
}

type CreateSongRequest struct {
	Title      string   `json:"title" validate:"required,max=255"`
	Artist     string   `json:"artist" validate:"omitempty,max=255"`
	Key        string   `json:"key" validate:"omitempty,max=10"`
	Tempo      *int     `json:"tempo" validate:"omitempty,min=20,max=300"`
	Genre      string   `json:"genre" validate:"omitempty,max=100"`
	Lyrics     string   `json:"lyrics"`
	Chords     string   `json:"chords"`
	CcliNumber string   `json:"ccli_number" validate:"omitempty,max=50"`
	Duration   *int     `json:"duration" validate:"omitempty,min=1"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Tags       []string `json:"tags" validate:"omitempty,dive,max=100"`
}

func (r *CreateSongRequest) Validate() map[string][]string {
	r.Title = strings.TrimSpace(r.Title)
	return validateStruct(r)
}

type CreateSetlistRequest struct {
	Name      string            `json:"name" validate:"required,max=255"`
	EventDate string            `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventType string            `json:"event_type" validate:"required,max=100"`
	TeamID    string            `json:"team_id" validate:"required,uuid4"`
	Notes     string            `json:"notes" validate:"omitempty,max=2000"`
	Songs     []SetlistSongItem `json:"songs" validate:"omitempty,dive"`
}

type SetlistSongItem struct {
	SongID string `json:"song_id" validate:"required,uuid4"`
	Key    string `json:"key" validate:"omitempty,max=10"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

func (r *CreateSetlistRequest) Validate() map[string][]string {
	r.Name = strings.TrimSpace(r.Name)
	return validateStruct(r)
}

// validateStruct converte os erros do validator no mapa campo → mensagens
// padrão da API.
func validateStruct(s any) map[string][]string {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		errs := map[string][]string{}
		for _, fe := range err.(validator.ValidationErrors) {
			key := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errs[key] = append(errs[key], "Campo obrigatório")
			case "uuid4":
				errs[key] = append(errs[key], "UUID inválido")
			case "datetime":
				errs[key] = append(errs[key], "Data deve estar no formato AAAA-MM-DD")
			case "oneof":
				errs[key] = append(errs[key], "Valor fora das opções aceitas")
			default:
				errs[key] = append(errs[key], "Valor inválido")
			}
		}
		return errs
	}
	return nil
}
