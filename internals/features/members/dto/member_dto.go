// internals/features/members/dto/member_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CreateMemberRequest struct {
	FirstName      string   `json:"first_name" validate:"required,max=100"`
	LastName       string   `json:"last_name" validate:"required,max=100"`
	Email          string   `json:"email" validate:"omitempty,email,max=255"`
	Phone          string   `json:"phone" validate:"omitempty,max=20"`
	BirthDate      string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	BaptismDate    string   `json:"baptism_date" validate:"omitempty,datetime=2006-01-02"`
	MembershipDate string   `json:"membership_date" validate:"omitempty,datetime=2006-01-02"`
	Ministries     []string `json:"ministries" validate:"omitempty,dive,max=100"`
}

func (r *CreateMemberRequest) Validate() map[string][]string {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		errs := map[string][]string{}
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "FirstName":
				errs["first_name"] = append(errs["first_name"], "Nome é obrigatório (máximo 100 caracteres)")
			case "LastName":
				errs["last_name"] = append(errs["last_name"], "Sobrenome é obrigatório (máximo 100 caracteres)")
			case "Email":
				errs["email"] = append(errs["email"], "Email inválido")
			case "Phone":
				errs["phone"] = append(errs["phone"], "Telefone muito longo")
			case "BirthDate":
				errs["birth_date"] = append(errs["birth_date"], "Data deve estar no formato AAAA-MM-DD")
			case "BaptismDate":
				errs["baptism_date"] = append(errs["baptism_date"], "Data deve estar no formato AAAA-MM-DD")
			case "MembershipDate":
				errs["membership_date"] = append(errs["membership_date"], "Data deve estar no formato AAAA-MM-DD")
			case "Ministries":
				errs["ministries"] = append(errs["ministries"], "Nome de ministério muito longo")
			}
		}
		return errs
	}
	return nil
}

type UpdateMemberRequest struct {
	FirstName  *string  `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName   *string  `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email      *string  `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string  `json:"phone" validate:"omitempty,max=20"`
	Photo      *string  `json:"photo"`
	IsActive   *bool    `json:"is_active"`
	Ministries []string `json:"ministries" validate:"omitempty,dive,max=100"`
}

func (r *UpdateMemberRequest) Validate() map[string][]string {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		errs := map[string][]string{}
		for _, fe := range err.(validator.ValidationErrors) {
			key := strings.ToLower(fe.Field())
			errs[key] = append(errs[key], "Valor inválido")
		}
		return errs
	}
	return nil
}

type AssignCellGroupRequest struct {
	CellGroupID *string `json:"cell_group_id"` // null remove do grupo
}
