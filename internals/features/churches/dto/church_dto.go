package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

// RegisterChurchRequest — payload do cadastro de igreja + administrador.
type RegisterChurchRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Subdomain       string `json:"subdomain" validate:"required,max=100"`
	Address         string `json:"address"`
	Phone           string `json:"phone" validate:"max=20"`
	Email           string `json:"email" validate:"required,email"`
	AdminName       string `json:"admin_name" validate:"required,max=255"`
	AdminEmail      string `json:"admin_email" validate:"required,email"`
	AdminPassword   string `json:"admin_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=AdminPassword"`
	AcceptTerms     bool   `json:"accept_terms" validate:"required,eq=true"`
	AcceptPrivacy   bool   `json:"accept_privacy" validate:"required,eq=true"`
}

// Validate aplica as regras do validator + formato do subdomínio.
// Retorna o mapa campo→mensagens no formato que JsonValidationError espera.
func (r *RegisterChurchRequest) Validate() map[string][]string {
	fieldErrors := map[string][]string{}

	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], messageFor(fe))
			}
		} else {
			fieldErrors["_"] = append(fieldErrors["_"], "payload inválido")
		}
	}

	// subdomínio: minúsculas, dígitos e hífen — validado antes de qualquer lookup
	r.Subdomain = helper.NormalizeSubdomain(r.Subdomain)
	if r.Subdomain != "" && !helper.IsValidSubdomain(r.Subdomain) {
		fieldErrors["Subdomain"] = append(fieldErrors["Subdomain"],
			"Subdomínio deve conter apenas letras minúsculas, números e hífens.")
	}
	if helper.IsReservedSubdomain(r.Subdomain) {
		fieldErrors["Subdomain"] = append(fieldErrors["Subdomain"],
			"Este subdomínio é reservado.")
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " é obrigatório."
	case "email":
		return "Formato de email inválido."
	case "min":
		return fe.Field() + " deve ter pelo menos " + fe.Param() + " caracteres."
	case "max":
		return fe.Field() + " deve ter no máximo " + fe.Param() + " caracteres."
	case "eqfield":
		return "Senhas não coincidem."
	case "eq":
		return "Você deve aceitar os termos de uso e a política de privacidade."
	default:
		return "Formato inválido."
	}
}

// RegisterChurchResponse — retorno do cadastro.
type RegisterChurchResponse struct {
	ChurchID    uuid.UUID `json:"church_id"`
	Subdomain   string    `json:"subdomain"`
	AdminUserID uuid.UUID `json:"admin_user_id"`
	SchemaReady bool      `json:"schema_ready"`
	Message     string    `json:"message"`
}

// ChurchResponse — projeção pública da igreja (resolve por subdomínio).
type ChurchResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Subdomain          string    `json:"subdomain"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	SubscriptionStatus string    `json:"subscription_status"`
	MemberCount        int       `json:"member_count"`
	IsActive           bool      `json:"is_active"`
}
