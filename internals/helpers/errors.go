// file: internals/helpers/errors.go
package helper

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===============================
   Taxonomia de erros do núcleo
=================================*/

var (
	// entrada malformada (subdomínio inválido, senha fraca, confirmação divergente)
	ErrValidation = errors.New("dados inválidos")
	// violação de unicidade (subdomínio ou email já cadastrados)
	ErrConflict = errors.New("registro já existe")
	// igreja/subdomínio não resolve
	ErrNotFound = errors.New("registro não encontrado")
	// credencial ausente/inválida
	ErrUnauthorized = errors.New("não autorizado")
	// papel/igreja não batem — sem vazar se a igreja alvo existe
	ErrForbidden = errors.New("acesso negado")
	// pool esgotado / conexão caiu; seguro repetir a operação inteira
	ErrTransientStore = errors.New("erro temporário de banco")
	// transação compartilhada commitou mas o schema do tenant não foi criado;
	// reparável re-executando o provisionamento (idempotente)
	ErrPartialProvisioning = errors.New("provisionamento do schema pendente")
)

// FromDBError traduz erros do GORM/driver para a taxonomia do núcleo.
// Exige gorm.Config{TranslateError: true} na abertura da conexão.
func FromDBError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTransientStore
	default:
		return err
	}
}

// StatusFromError mapeia a taxonomia para status HTTP.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrTransientStore):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrPartialProvisioning):
		return fiber.StatusAccepted
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonFromError: atalho controller → resposta padrão.
func JsonFromError(c *fiber.Ctx, err error) error {
	return JsonError(c, StatusFromError(err), err.Error())
}
