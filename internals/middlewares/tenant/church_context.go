// file: internals/middlewares/tenant/church_context.go
package tenant

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"minhaigreja_backend/internals/configs"
	"minhaigreja_backend/internals/constants"
	database "minhaigreja_backend/internals/databases"
	churchService "minhaigreja_backend/internals/features/churches/service"
	helper "minhaigreja_backend/internals/helpers"
)

const logPrefix = "[CHURCH_CTX]"

// ChurchContext resolve o subdomínio do Host para a igreja ativa e guarda
// active_church_id nos Locals. Subdomínio reservado (www/admin) segue sem
// contexto de tenant — é o fluxo administrativo, não um erro.
func ChurchContext(reg *database.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub := helper.SubdomainFromHost(c.Hostname(), configs.RootDomain)
		if sub == "" {
			// host raiz, IP ou localhost: sem tenant
			return c.Next()
		}

		church, err := churchService.ResolveChurchBySubdomain(c.UserContext(), reg, sub)
		if err != nil {
			if errors.Is(err, helper.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Igreja não encontrada para este endereço")
			}
			log.Printf("%s erro resolvendo %q: %v", logPrefix, sub, err)
			return helper.JsonFromError(c, err)
		}
		if church == nil {
			return c.Next()
		}

		c.Locals("active_church_id", church.ID.String())
		c.Locals("active_church_subdomain", church.Subdomain)
		return c.Next()
	}
}

// RequireChurchAccess garante que o usuário autenticado pode agir sobre a
// igreja ativa da requisição (super_admin passa sempre; os demais só na
// própria igreja). Sem vazar se a igreja alvo existe ou não.
func RequireChurchAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		userChurchID, _ := c.Locals("church_id").(string)
		targetChurchID, _ := c.Locals("active_church_id").(string)

		if targetChurchID == "" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Nenhuma igreja ativa nesta requisição",
			})
		}
		if !constants.CanAccessChurch(role, userChurchID, targetChurchID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Acesso negado",
			})
		}
		return c.Next()
	}
}

// ActiveChurchID lê o tenant resolvido dos Locals.
func ActiveChurchID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals("active_church_id").(string)
	if s == "" {
		return uuid.Nil, errors.New("sem igreja ativa no contexto")
	}
	return uuid.Parse(s)
}
