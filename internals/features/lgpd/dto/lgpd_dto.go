// internals/features/lgpd/dto/lgpd_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validRequestTypes = map[string]bool{
	"access":        true,
	"deletion":      true,
	"portability":   true,
	"rectification": true,
}

type CreateDataRequest struct {
	Type  string `json:"type" validate:"required"`
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *CreateDataRequest) Validate() map[string][]string {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	errs := map[string][]string{}

	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Type":
				errs["type"] = append(errs["type"], "Tipo da solicitação é obrigatório")
			case "Notes":
				errs["notes"] = append(errs["notes"], "Observações muito longas (máximo 2000 caracteres)")
			}
		}
	}
	if r.Type != "" && !validRequestTypes[r.Type] {
		errs["type"] = append(errs["type"], "Tipo deve ser: access, deletion, portability ou rectification")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type UpdateDataRequestStatus struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed denied"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateDataRequestStatus) Validate() map[string][]string {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		errs := map[string][]string{}
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Status":
				errs["status"] = append(errs["status"], "Status deve ser: pending, processing, completed ou denied")
			case "Notes":
				errs["notes"] = append(errs["notes"], "Observações muito longas (máximo 2000 caracteres)")
			}
		}
		return errs
	}
	return nil
}

type WithdrawConsentRequest struct {
	Purpose string `json:"purpose" validate:"required,max=255"`
}
