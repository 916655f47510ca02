package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// O search_path tem de ser fixado ANTES de qualquer query, em toda chamada.
// As expectativas do sqlmock são ordenadas: se a query viesse antes do SET,
// o teste falharia.
func TestWithTenantSetsSearchPathFirst(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := SchemaName(churchID)

	mock.ExpectExec(`SET search_path TO "` + schema + `", public`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	var count int64
	err := reg.WithTenant(context.Background(), churchID, func(tx *gorm.DB) error {
		return tx.Raw(`SELECT count(*) FROM members`).Scan(&count).Error
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Cada chamada re-executa o SET: conexão de pool não carrega estado confiável.
func TestWithTenantReassertsSearchPathEveryCall(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := SchemaName(churchID)

	for i := 0; i < 2; i++ {
		mock.ExpectExec(`SET search_path TO "` + schema + `", public`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE members`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	for i := 0; i < 2; i++ {
		err := reg.TenantExec(context.Background(), churchID, `UPDATE members SET is_active = false WHERE id = ?`, uuid.New())
		require.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTenantPropagatesCallbackError(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()
	schema := SchemaName(churchID)

	mock.ExpectExec(`SET search_path TO "` + schema + `", public`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	boom := errors.New("falha de domínio")
	err := reg.WithTenant(context.Background(), churchID, func(tx *gorm.DB) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithTenantFailedSetAbortsCall(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()

	mock.ExpectExec(`SET search_path`).WillReturnError(errors.New("conexão caiu"))

	called := false
	err := reg.WithTenant(context.Background(), churchID, func(tx *gorm.DB) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called, "callback não pode rodar sem search_path fixado")
}

func TestTenantRawScansResult(t *testing.T) {
	reg, mock := mockRegistry(t)
	churchID := uuid.New()

	mock.ExpectExec(`SET search_path`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT name FROM cell_groups`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Célula Esperança"))

	var name string
	err := reg.TenantRaw(context.Background(), churchID, &name, `SELECT name FROM cell_groups WHERE id = ?`, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Célula Esperança", name)
}

func TestWithSharedNoSearchPath(t *testing.T) {
	reg, mock := mockRegistry(t)

	// nenhuma expectativa de SET search_path: query direta
	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	var count int64
	err := reg.WithShared(context.Background(), func(tx *gorm.DB) error {
		return tx.Raw(`SELECT count(*) FROM churches`).Scan(&count).Error
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
