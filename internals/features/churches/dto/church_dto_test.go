package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() RegisterChurchRequest {
	return RegisterChurchRequest{
		Name:            "Igreja Batista da Graça",
		Subdomain:       "graca",
		Address:         "Rua das Flores, 100",
		Phone:           "11999998888",
		Email:           "contato@graca.com.br",
		AdminName:       "João Pastor",
		AdminEmail:      "joao@graca.com.br",
		AdminPassword:   "SenhaForte123",
		ConfirmPassword: "SenhaForte123",
		AcceptTerms:     true,
		AcceptPrivacy:   true,
	}
}

func TestValidateOK(t *testing.T) {
	req := validRequest()
	assert.Nil(t, req.Validate())
}

func TestValidateNormalizesSubdomain(t *testing.T) {
	req := validRequest()
	req.Subdomain = "  GRACA  "
	assert.Nil(t, req.Validate())
	assert.Equal(t, "graca", req.Subdomain)
}

func TestValidatePasswordMismatch(t *testing.T) {
	req := validRequest()
	req.ConfirmPassword = "outra-senha-123"
	errs := req.Validate()
	assert.Contains(t, errs, "ConfirmPassword")
}

func TestValidateShortPassword(t *testing.T) {
	req := validRequest()
	req.AdminPassword = "curta"
	req.ConfirmPassword = "curta"
	errs := req.Validate()
	assert.Contains(t, errs, "AdminPassword")
}

func TestValidateSubdomainFormat(t *testing.T) {
	for _, bad := range []string{"igreja_central", "igreja central", "açao!"} {
		req := validRequest()
		req.Subdomain = bad
		errs := req.Validate()
		assert.Contains(t, errs, "Subdomain", "subdomínio %q deveria falhar", bad)
	}
}

func TestValidateReservedSubdomain(t *testing.T) {
	for _, reserved := range []string{"www", "admin", "WWW"} {
		req := validRequest()
		req.Subdomain = reserved
		errs := req.Validate()
		assert.Contains(t, errs, "Subdomain", "subdomínio reservado %q deveria falhar", reserved)
	}
}

func TestValidateConsentFlagsRequired(t *testing.T) {
	req := validRequest()
	req.AcceptTerms = false
	assert.Contains(t, req.Validate(), "AcceptTerms")

	req = validRequest()
	req.AcceptPrivacy = false
	assert.Contains(t, req.Validate(), "AcceptPrivacy")
}

func TestValidateAccumulatesErrors(t *testing.T) {
	req := RegisterChurchRequest{}
	errs := req.Validate()
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "AdminPassword")
	assert.Contains(t, errs, "AcceptTerms")
}
