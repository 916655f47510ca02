// internals/features/cellgroups/dto/cell_group_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	cellModel "minhaigreja_backend/internals/features/cellgroups/model"
)

type CreateCellGroupRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	LeaderID    string          `json:"leader_id" validate:"required,uuid4"`
	CoLeaderID  string          `json:"co_leader_id" validate:"omitempty,uuid4"`
	Address     json.RawMessage `json:"address" validate:"required"`
	MeetingDay  string          `json:"meeting_day" validate:"required"`
	MeetingTime string          `json:"meeting_time" validate:"required,datetime=15:04"`
	MaxMembers  *int            `json:"max_members" validate:"omitempty,min=1,max=500"`
}

func (r *CreateCellGroupRequest) Validate() map[string][]string {
	r.Name = strings.TrimSpace(r.Name)
	r.MeetingDay = strings.ToLower(strings.TrimSpace(r.MeetingDay))

	errs := map[string][]string{}
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Name":
				errs["name"] = append(errs["name"], "Nome da célula é obrigatório (máximo 255 caracteres)")
			case "Description":
				errs["description"] = append(errs["description"], "Descrição muito longa")
			case "LeaderID":
				errs["leader_id"] = append(errs["leader_id"], "Líder é obrigatório (UUID)")
			case "CoLeaderID":
				errs["co_leader_id"] = append(errs["co_leader_id"], "Co-líder inválido (UUID)")
			case "Address":
				errs["address"] = append(errs["address"], "Endereço é obrigatório")
			case "MeetingDay":
				errs["meeting_day"] = append(errs["meeting_day"], "Dia de reunião é obrigatório")
			case "MeetingTime":
				errs["meeting_time"] = append(errs["meeting_time"], "Horário deve estar no formato HH:MM")
			case "MaxMembers":
				errs["max_members"] = append(errs["max_members"], "Capacidade deve estar entre 1 e 500")
			}
		}
	}
	if r.MeetingDay != "" && !cellModel.ValidMeetingDays[r.MeetingDay] {
		errs["meeting_day"] = append(errs["meeting_day"], "Dia deve ser: domingo, segunda, terca, quarta, quinta, sexta ou sabado")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateCellGroupRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	LeaderID    *string         `json:"leader_id" validate:"omitempty,uuid4"`
	CoLeaderID  *string         `json:"co_leader_id" validate:"omitempty,uuid4"`
	Address     json.RawMessage `json:"address"`
	MeetingDay  *string         `json:"meeting_day"`
	MeetingTime *string         `json:"meeting_time" validate:"omitempty,datetime=15:04"`
	IsActive    *bool           `json:"is_active"`
	MaxMembers  *int            `json:"max_members" validate:"omitempty,min=1,max=500"`
}

func (r *UpdateCellGroupRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			key := strings.ToLower(fe.Field())
			errs[key] = append(errs[key], "Valor inválido")
		}
	}
	if r.MeetingDay != nil {
		day := strings.ToLower(strings.TrimSpace(*r.MeetingDay))
		if !cellModel.ValidMeetingDays[day] {
			errs["meeting_day"] = append(errs["meeting_day"], "Dia de reunião inválido")
		} else {
			*r.MeetingDay = day
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
