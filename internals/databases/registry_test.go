package database

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func countingOpen(t *testing.T, opens *int32) OpenFunc {
	t.Helper()
	return func() (*gorm.DB, error) {
		atomic.AddInt32(opens, 1)
		sqlDB, _, err := sqlmock.New()
		if err != nil {
			return nil, err
		}
		return gorm.Open(postgres.New(postgres.Config{
			Conn:                 sqlDB,
			PreferSimpleProtocol: true,
		}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	}
}

func TestSharedCreatedOnce(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))

	first, err := reg.Shared()
	require.NoError(t, err)
	second, err := reg.Shared()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, opens)
}

func TestTenantPoolPerChurch(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))

	churchA := uuid.New()
	churchB := uuid.New()

	a1, err := reg.Tenant(churchA)
	require.NoError(t, err)
	a2, err := reg.Tenant(churchA)
	require.NoError(t, err)
	b, err := reg.Tenant(churchB)
	require.NoError(t, err)

	assert.Same(t, a1, a2, "mesma igreja reusa o pool")
	assert.NotSame(t, a1, b, "igrejas diferentes não compartilham pool")
	assert.EqualValues(t, 2, opens)
}

func TestTenantRejectsNilChurch(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))

	_, err := reg.Tenant(uuid.Nil)
	assert.Error(t, err)
	assert.EqualValues(t, 0, opens)
}

// Acessos concorrentes à mesma igreja convergem para um único pool.
func TestTenantConcurrentAccessConverges(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))
	churchID := uuid.New()

	const goroutines = 32
	results := make([]*gorm.DB, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			db, err := reg.Tenant(churchID)
			require.NoError(t, err)
			results[idx] = db
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.EqualValues(t, 1, opens)
}

func TestEvictTenant(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))
	churchID := uuid.New()

	_, err := reg.Tenant(churchID)
	require.NoError(t, err)
	require.True(t, reg.HasTenant(churchID))

	reg.EvictTenant(churchID)
	assert.False(t, reg.HasTenant(churchID))

	// próximo acesso abre um pool novo
	_, err = reg.Tenant(churchID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, opens)
}

func TestEvictTenantUnknownIsNoop(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))
	reg.EvictTenant(uuid.New())
	assert.EqualValues(t, 0, opens)
}

func TestCloseAllResetsState(t *testing.T) {
	var opens int32
	reg := NewRegistry(countingOpen(t, &opens))
	churchID := uuid.New()

	_, err := reg.Shared()
	require.NoError(t, err)
	_, err = reg.Tenant(churchID)
	require.NoError(t, err)

	reg.CloseAll()
	assert.False(t, reg.HasTenant(churchID))

	// depois do shutdown um novo acesso reabre
	_, err = reg.Shared()
	require.NoError(t, err)
	assert.EqualValues(t, 3, opens)
}

func TestOpenErrorPropagates(t *testing.T) {
	boom := errors.New("conexão recusada")
	reg := NewRegistry(func() (*gorm.DB, error) { return nil, boom })

	_, err := reg.Shared()
	assert.ErrorIs(t, err, boom)
	_, err = reg.Tenant(uuid.New())
	assert.ErrorIs(t, err, boom)
}
