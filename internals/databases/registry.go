package database

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
)

// OpenFunc abre uma nova conexão GORM com o Postgres. Injetável para testes.
type OpenFunc func() (*gorm.DB, error)

// Limites de pool — alinhados com o limite do Supabase/PgBouncer.
const (
	sharedMaxOpen = 20
	sharedMaxIdle = 10
	tenantMaxOpen = 10
	tenantMaxIdle = 5
	connMaxIdle   = 60 * time.Second
	connMaxLife   = 10 * time.Minute
)

// Registry é o dono de todas as conexões vivas do processo: um pool para o
// plano de controle e um pool por igreja, criado sob demanda e cacheado até
// o shutdown. Construído no main() e injetado — nada de singleton global.
type Registry struct {
	open OpenFunc

	mu      sync.Mutex
	shared  *gorm.DB
	tenants map[uuid.UUID]*gorm.DB
}

func NewRegistry(open OpenFunc) *Registry {
	return &Registry{
		open:    open,
		tenants: make(map[uuid.UUID]*gorm.DB),
	}
}

// OpenPostgres monta a DSN a partir do ENV e devolve o OpenFunc de produção.
// statement_timeout curto: nenhuma query segura conexão indefinidamente.
func OpenPostgres() OpenFunc {
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=minhaigreja&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT"),
		configs.GetEnv("DB_NAME"),
		sslmode,
	)

	return func() (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // 👍 compatível com PgBouncer (transaction pooling)
		}), &gorm.Config{
			Logger:         configs.NewGormLogger(),
			TranslateError: true, // unique_violation → gorm.ErrDuplicatedKey
		})
	}
}

// Shared devolve o pool do plano de controle, criado uma única vez.
func (r *Registry) Shared() (*gorm.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shared != nil {
		return r.shared, nil
	}
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	if err := tunePool(db, sharedMaxOpen, sharedMaxIdle); err != nil {
		return nil, err
	}
	r.shared = db
	log.Println("✅ Pool compartilhado conectado.")
	return r.shared, nil
}

// Tenant devolve o pool da igreja, criando no primeiro acesso. O mutex cobre
// o check-then-create inteiro: dois acessos concorrentes convergem para a
// mesma instância.
func (r *Registry) Tenant(churchID uuid.UUID) (*gorm.DB, error) {
	if churchID == uuid.Nil {
		return nil, fmt.Errorf("registry: church_id vazio")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.tenants[churchID]; ok {
		return db, nil
	}
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	if err := tunePool(db, tenantMaxOpen, tenantMaxIdle); err != nil {
		return nil, err
	}
	r.tenants[churchID] = db
	log.Printf("[POOL] pool criado para igreja %s", churchID)
	return db, nil
}

// EvictTenant fecha e remove o pool da igreja (usado após DROP SCHEMA).
func (r *Registry) EvictTenant(churchID uuid.UUID) {
	r.mu.Lock()
	db, ok := r.tenants[churchID]
	if ok {
		delete(r.tenants, churchID)
	}
	r.mu.Unlock()

	if ok {
		closeDB(db)
		log.Printf("[POOL] pool da igreja %s removido", churchID)
	}
}

// HasTenant informa se há pool cacheado para a igreja (exposto para testes
// e para o health check do admin).
func (r *Registry) HasTenant(churchID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tenants[churchID]
	return ok
}

// CloseAll drena e fecha todos os pools. Só no shutdown do processo.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	shared := r.shared
	r.shared = nil
	tenants := r.tenants
	r.tenants = make(map[uuid.UUID]*gorm.DB)
	r.mu.Unlock()

	if shared != nil {
		closeDB(shared)
	}
	for id, db := range tenants {
		closeDB(db)
		log.Printf("[POOL] pool da igreja %s fechado", id)
	}
	log.Println("✅ Todos os pools fechados.")
}

// Ping confirma que o pool compartilhado responde (health check).
func (r *Registry) Ping() error {
	db, err := r.Shared()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func tunePool(db *gorm.DB, maxOpen, maxIdle int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxIdleTime(connMaxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLife)
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
