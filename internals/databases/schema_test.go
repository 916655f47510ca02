package database

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaName(t *testing.T) {
	churchID := uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	got := SchemaName(churchID)

	assert.Equal(t, "tenant_a1b2c3d4_e5f6_7890_abcd_ef1234567890", got)
	// identificador Postgres válido sem aspas: sem hífen
	assert.NotContains(t, got, "-")
	// determinístico
	assert.Equal(t, got, SchemaName(churchID))
}

func TestSchemaNameDistinctPerChurch(t *testing.T) {
	a := SchemaName(uuid.New())
	b := SchemaName(uuid.New())
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "tenant_"))
	assert.True(t, strings.HasPrefix(b, "tenant_"))
}

// Todo DDL é idempotente: IF NOT EXISTS em tudo.
func TestAllDDLIsIdempotent(t *testing.T) {
	for _, ddl := range sharedTables {
		assert.Contains(t, ddl, "IF NOT EXISTS", "shared table: %.60s", ddl)
	}
	for _, ddl := range sharedIndexes {
		assert.Contains(t, ddl, "IF NOT EXISTS", "shared index: %.60s", ddl)
	}

	schema := SchemaName(uuid.New())
	for _, ddl := range tenantTableDDL(schema) {
		assert.Contains(t, ddl, "IF NOT EXISTS", "tenant table: %.60s", ddl)
	}
	for _, ddl := range tenantIndexDDL(schema) {
		assert.Contains(t, ddl, "IF NOT EXISTS", "tenant index: %.60s", ddl)
	}
}

// Toda tabela e índice de tenant fica dentro do schema da igreja.
func TestTenantDDLIsSchemaQualified(t *testing.T) {
	schema := SchemaName(uuid.New())
	quoted := `"` + schema + `"`

	for _, ddl := range tenantTableDDL(schema) {
		assert.Contains(t, ddl, quoted+".", "tabela fora do schema: %.60s", ddl)
	}
	for _, ddl := range tenantIndexDDL(schema) {
		assert.Contains(t, ddl, quoted+".", "índice fora do schema: %.60s", ddl)
	}
}

func TestCreateTenantSchemaRunsAllDDL(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := SchemaName(churchID)

	mock.ExpectExec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for range tenantTableDDL(schema) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range tenantIndexDDL(schema) {
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err := CreateTenantSchema(context.Background(), reg, churchID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDropTenantSchemaEvictsPool(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := SchemaName(churchID)

	// força pool de tenant no cache
	_, err := reg.Tenant(churchID)
	require.NoError(t, err)
	require.True(t, reg.HasTenant(churchID))

	mock.ExpectExec(`DROP SCHEMA IF EXISTS "` + schema + `" CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = DropTenantSchema(context.Background(), reg, churchID)
	require.NoError(t, err)
	assert.False(t, reg.HasTenant(churchID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeSharedSchema(t *testing.T) {
	reg, mock := mockRegistry(t)

	for range sharedTables {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for range sharedIndexes {
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err := InitializeSharedSchema(context.Background(), reg)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
