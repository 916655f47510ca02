package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "minhaigreja_backend/internals/databases"
	churchDTO "minhaigreja_backend/internals/features/churches/dto"
	helper "minhaigreja_backend/internals/helpers"
)

func registerRequest() *churchDTO.RegisterChurchRequest {
	return &churchDTO.RegisterChurchRequest{
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

func expectCountRow(mock sqlmock.Sqlmock, table string, count int64) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "` + table + `"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

// expectRegistrationTx monta a transação do plano de controle:
// igreja → admin → admin_user_id → 4 consentimentos.
func expectRegistrationTx(mock sqlmock.Sqlmock, churchID, adminID uuid.UUID) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "churches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(churchID.String()))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(adminID.String()))
	mock.ExpectExec(`UPDATE "churches" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 4; i++ {
		mock.ExpectQuery(`INSERT INTO "consent_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	}
	mock.ExpectCommit()
}

func expectTenantProvisioning(mock sqlmock.Sqlmock, churchID uuid.UUID) {
	schema := database.SchemaName(churchID)
	mock.ExpectExec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// 9 tabelas + 7 índices do tenant
	for i := 0; i < 9; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for i := 0; i < 7; i++ {
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestRegisterChurchSuccess(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	adminID := uuid.New()

	expectCountRow(mock, "churches", 0)
	expectCountRow(mock, "users", 0)
	expectRegistrationTx(mock, churchID, adminID)
	expectTenantProvisioning(mock, churchID)

	resp, err := RegisterChurch(context.Background(), reg, registerRequest(), "187.45.1.10", "test-agent")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, churchID, resp.ChurchID)
	assert.Equal(t, adminID, resp.AdminUserID)
	assert.Equal(t, "graca", resp.Subdomain)
	assert.True(t, resp.SchemaReady)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterChurchSubdomainTaken(t *testing.T) {
	reg, mock := mockRegistry(t)

	expectCountRow(mock, "churches", 1)

	_, err := RegisterChurch(context.Background(), reg, registerRequest(), "", "")
	assert.ErrorIs(t, err, helper.ErrConflict)
	// nada além da checagem de subdomínio tocou o banco
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterChurchAdminEmailTaken(t *testing.T) {
	reg, mock := mockRegistry(t)

	expectCountRow(mock, "churches", 0)
	expectCountRow(mock, "users", 1)

	_, err := RegisterChurch(context.Background(), reg, registerRequest(), "", "")
	assert.ErrorIs(t, err, helper.ErrConflict)
}

// Falha no meio da transação desfaz tudo: tentativa falhada não deixa linha.
func TestRegisterChurchRollbackOnUserInsertFailure(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()

	expectCountRow(mock, "churches", 0)
	expectCountRow(mock, "users", 0)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "churches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(churchID.String()))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := RegisterChurch(context.Background(), reg, registerRequest(), "", "")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Commit ok + schema falhou: estado recuperável, resposta 202 com
// schema_ready=false, nunca um erro fatal.
func TestRegisterChurchPartialProvisioning(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	adminID := uuid.New()

	expectCountRow(mock, "churches", 0)
	expectCountRow(mock, "users", 0)
	expectRegistrationTx(mock, churchID, adminID)
	mock.ExpectExec(`CREATE SCHEMA IF NOT EXISTS`).
		WillReturnError(assert.AnError)

	resp, err := RegisterChurch(context.Background(), reg, registerRequest(), "", "")
	assert.ErrorIs(t, err, helper.ErrPartialProvisioning)
	require.NotNil(t, resp, "resposta acompanha o erro de provisionamento parcial")
	assert.Equal(t, churchID, resp.ChurchID)
	assert.False(t, resp.SchemaReady)
}

// Reparo é re-executar o provisionamento idempotente.
func TestRepairChurchSchema(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "churches" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subdomain"}).
			AddRow(churchID.String(), "graca"))
	expectTenantProvisioning(mock, churchID)

	err := RepairChurchSchema(context.Background(), reg, churchID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairChurchSchemaUnknownChurch(t *testing.T) {
	reg, mock := mockRegistry(t)

	mock.ExpectQuery(`SELECT \* FROM "churches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := RepairChurchSchema(context.Background(), reg, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestRemoveChurchDropsSchema(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := database.SchemaName(churchID)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "churches"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec(`DROP SCHEMA IF EXISTS "` + schema + `" CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := RemoveChurch(context.Background(), reg, churchID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveChurchNotFound(t *testing.T) {
	reg, mock := mockRegistry(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "churches"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := RemoveChurch(context.Background(), reg, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
