package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "minhaigreja_backend/internals/helpers"
)

func TestResolveReservedSubdomainNoTenant(t *testing.T) {
	reg, _ := mockRegistry(t)

	// www/admin: sem contexto de tenant, sem lookup, sem erro
	for _, sub := range []string{"www", "admin", "WWW", "  Admin  ", ""} {
		church, err := ResolveChurchBySubdomain(context.Background(), reg, sub)
		assert.NoError(t, err, "subdomínio %q", sub)
		assert.Nil(t, church, "subdomínio %q", sub)
	}
}

func TestResolveInvalidSubdomainNoLookup(t *testing.T) {
	reg, mock := mockRegistry(t)

	for _, sub := range []string{"igreja_central", "igreja central", "aç-ão"} {
		_, err := ResolveChurchBySubdomain(context.Background(), reg, sub)
		assert.ErrorIs(t, err, helper.ErrValidation, "subdomínio %q", sub)
	}
	// nenhuma query chegou ao banco
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveFound(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "churches" WHERE subdomain = \$1 AND is_active = true`).
		WithArgs("graca", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subdomain", "is_active", "subscription_status"}).
			AddRow(churchID.String(), "Igreja da Graça", "graca", true, "trial"))

	church, err := ResolveChurchBySubdomain(context.Background(), reg, "  GRACA ")
	require.NoError(t, err)
	require.NotNil(t, church)
	assert.Equal(t, churchID, church.ID)
	assert.Equal(t, "graca", church.Subdomain)
}

func TestResolveNotFound(t *testing.T) {
	reg, mock := mockRegistry(t)

	mock.ExpectQuery(`SELECT \* FROM "churches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ResolveChurchBySubdomain(context.Background(), reg, "inexistente")
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
