package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Provisionador de schema. Único lugar do sistema que emite DDL.
//
// Todo statement aqui é idempotente (IF NOT EXISTS / IF EXISTS): rodar duas
// vezes produz o mesmo estado observável e nenhum erro na segunda vez.

// SchemaName deriva o nome do schema isolado a partir do UUID da igreja.
// O UUID já foi parseado — nunca texto vindo do usuário — então a composição
// do identificador é estruturalmente segura; hífens viram underscore porque
// identificador Postgres não aceita hífen sem aspas.
func SchemaName(churchID uuid.UUID) string {
	return "tenant_" + strings.ReplaceAll(churchID.String(), "-", "_")
}

/* ==========================
   Plano de controle (compartilhado)
========================== */

var sharedTables = []string{
	`CREATE TABLE IF NOT EXISTS churches (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		subdomain VARCHAR(100) UNIQUE NOT NULL,
		address TEXT NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(255) UNIQUE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		is_active BOOLEAN DEFAULT true,
		subscription_status VARCHAR(20) DEFAULT 'trial' CHECK (subscription_status IN ('active', 'inactive', 'suspended', 'trial')),
		member_count INTEGER DEFAULT 0,
		monthly_fee DECIMAL(10,2) DEFAULT 0.00,
		admin_user_id UUID
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		avatar TEXT,
		role VARCHAR(50) NOT NULL CHECK (role IN ('super_admin', 'church_admin', 'pastor', 'leader', 'member', 'visitor')),
		church_id UUID,
		is_active BOOLEAN DEFAULT true,
		last_login TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		two_factor_enabled BOOLEAN DEFAULT false,
		password_hash TEXT NOT NULL,
		FOREIGN KEY (church_id) REFERENCES churches(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		church_id UUID NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		member_count INTEGER NOT NULL,
		method VARCHAR(20) NOT NULL CHECK (method IN ('pix', 'credit_card', 'boleto')),
		status VARCHAR(20) DEFAULT 'pending' CHECK (status IN ('pending', 'paid', 'failed', 'cancelled')),
		due_date DATE NOT NULL,
		paid_at TIMESTAMP,
		transaction_id TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (church_id) REFERENCES churches(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		church_id UUID,
		action VARCHAR(255) NOT NULL,
		entity_type VARCHAR(100) NOT NULL,
		entity_id UUID NOT NULL,
		old_values JSONB,
		new_values JSONB,
		ip_address INET,
		user_agent TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (church_id) REFERENCES churches(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS consent_records (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		church_id UUID NOT NULL,
		purpose VARCHAR(255) NOT NULL,
		consent_given BOOLEAN NOT NULL,
		consent_date TIMESTAMP NOT NULL,
		withdrawn_date TIMESTAMP,
		ip_address INET,
		user_agent TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (church_id) REFERENCES churches(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		token TEXT NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS token_blacklist (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		token TEXT NOT NULL,
		expired_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS data_requests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		church_id UUID NOT NULL,
		type VARCHAR(20) NOT NULL CHECK (type IN ('access', 'deletion', 'portability', 'rectification')),
		status VARCHAR(20) DEFAULT 'pending' CHECK (status IN ('pending', 'processing', 'completed', 'denied')),
		request_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		completed_date TIMESTAMP,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (church_id) REFERENCES churches(id) ON DELETE CASCADE
	)`,
}

var sharedIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_churches_subdomain ON churches(subdomain)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE INDEX IF NOT EXISTS idx_users_church_id ON users(church_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_church_id ON payments(church_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_user_id ON audit_logs(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_church_id ON audit_logs(church_id)`,
	`CREATE INDEX IF NOT EXISTS idx_consent_records_user_id ON consent_records(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token ON refresh_tokens(token)`,
	`CREATE INDEX IF NOT EXISTS idx_token_blacklist_token ON token_blacklist(token)`,
}

// InitializeSharedSchema cria as tabelas e índices do plano de controle.
// Seguro chamar em todo start do processo.
func InitializeSharedSchema(ctx context.Context, r *Registry) error {
	return r.WithShared(ctx, func(tx *gorm.DB) error {
		for _, ddl := range sharedTables {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("shared schema: %w", err)
			}
		}
		for _, ddl := range sharedIndexes {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("shared index: %w", err)
			}
		}
		log.Println("[SCHEMA] plano de controle pronto")
		return nil
	})
}

/* ==========================
   Schema por tenant
========================== */

// tenantTableDDL gera o DDL das tabelas da igreja. FKs apontam apenas para
// tabelas do MESMO schema — referência cruzada entre tenants é
// estruturalmente impossível.
func tenantTableDDL(schema string) []string {
	q := pq.QuoteIdentifier(schema)
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.members (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			church_id UUID NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			birth_date DATE,
			address JSONB,
			photo TEXT,
			baptism_date DATE,
			membership_date DATE NOT NULL DEFAULT CURRENT_DATE,
			is_active BOOLEAN DEFAULT true,
			cell_group_id UUID,
			ministries TEXT[],
			emergency_contact JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.cell_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			church_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			leader_id UUID NOT NULL,
			co_leader_id UUID,
			address JSONB NOT NULL,
			meeting_day VARCHAR(20) NOT NULL,
			meeting_time TIME NOT NULL,
			is_active BOOLEAN DEFAULT true,
			max_members INTEGER,
			current_members INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.worship_teams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			church_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			leader_id UUID NOT NULL,
			ministry VARCHAR(100) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.worship_team_members (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			team_id UUID NOT NULL,
			member_id UUID NOT NULL,
			role VARCHAR(100) NOT NULL,
			instrument VARCHAR(100),
			skills TEXT[],
			availability JSONB,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (team_id) REFERENCES %s.worship_teams(id) ON DELETE CASCADE
		)`, q, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.songs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			church_id UUID NOT NULL,
			title VARCHAR(255) NOT NULL,
			artist VARCHAR(255),
			key VARCHAR(10),
			tempo INTEGER,
			genre VARCHAR(100),
			lyrics TEXT,
			chords TEXT,
			ccli_number VARCHAR(50),
			duration INTEGER,
			difficulty VARCHAR(20) CHECK (difficulty IN ('easy', 'medium', 'hard')),
			tags TEXT[],
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.setlists (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			church_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			event_date DATE NOT NULL,
			event_type VARCHAR(100) NOT NULL,
			team_id UUID NOT NULL,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (team_id) REFERENCES %s.worship_teams(id)
		)`, q, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.setlist_songs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			setlist_id UUID NOT NULL,
			song_id UUID NOT NULL,
			song_order INTEGER NOT NULL,
			key VARCHAR(10),
			notes TEXT,
			FOREIGN KEY (setlist_id) REFERENCES %s.setlists(id) ON DELETE CASCADE,
			FOREIGN KEY (song_id) REFERENCES %s.songs(id)
		)`, q, q, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.chat_messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			sender_id UUID NOT NULL,
			receiver_id UUID,
			group_id UUID,
			content TEXT NOT NULL,
			type VARCHAR(20) DEFAULT 'text' CHECK (type IN ('text', 'image', 'file', 'system')),
			file_url TEXT,
			file_name TEXT,
			is_read BOOLEAN DEFAULT false,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.notifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			church_id UUID NOT NULL,
			title VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			type VARCHAR(20) DEFAULT 'info' CHECK (type IN ('info', 'warning', 'error', 'success')),
			is_read BOOLEAN DEFAULT false,
			action_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, q),
	}
}

func tenantIndexDDL(schema string) []string {
	q := pq.QuoteIdentifier(schema)
	return []string{
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_members_church_id ON %s.members(church_id)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_members_email ON %s.members(email)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_members_cell_group ON %s.members(cell_group_id)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_cell_groups_church_id ON %s.cell_groups(church_id)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_songs_church_id ON %s.songs(church_id)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_chat_messages_group_id ON %s.chat_messages(group_id)`, schema, q),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_notifications_user_id ON %s.notifications(user_id)`, schema, q),
	}
}

// CreateTenantSchema provisiona o namespace isolado da igreja: schema,
// tabelas e índices, nessa ordem. Re-executável sem efeito colateral —
// é o caminho de reparo quando o provisionamento pós-commit falhou.
func CreateTenantSchema(ctx context.Context, r *Registry, churchID uuid.UUID) error {
	schema := SchemaName(churchID)
	return r.WithShared(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)).Error; err != nil {
			return fmt.Errorf("create schema %s: %w", schema, err)
		}
		for _, ddl := range tenantTableDDL(schema) {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("tenant table (%s): %w", schema, err)
			}
		}
		for _, ddl := range tenantIndexDDL(schema) {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("tenant index (%s): %w", schema, err)
			}
		}
		log.Printf("[SCHEMA] schema %s provisionado", schema)
		return nil
	})
}

// DropTenantSchema remove o schema e TODOS os dados da igreja, e tira o pool
// do cache. Irreversível — o gate de super_admin fica na rota, antes daqui.
func DropTenantSchema(ctx context.Context, r *Registry, churchID uuid.UUID) error {
	schema := SchemaName(churchID)
	err := r.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Exec("DROP SCHEMA IF EXISTS " + pq.QuoteIdentifier(schema) + " CASCADE").Error
	})
	if err != nil {
		return fmt.Errorf("drop schema %s: %w", schema, err)
	}
	r.EvictTenant(churchID)
	log.Printf("[SCHEMA] schema %s removido", schema)
	return nil
}
