package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Executor com escopo de tenant.
//
// Invariante: o SET search_path acontece na MESMA conexão que vai rodar a
// query, em toda chamada — conexão de pool nunca é confiável quanto ao
// search_path que a chamada anterior deixou. gorm's Connection() fixa uma
// única conexão e devolve ela ao pool em qualquer caminho de saída.

// WithTenant executa fn numa conexão única com o search_path fixado no
// schema da igreja.
func (r *Registry) WithTenant(ctx context.Context, churchID uuid.UUID, fn func(tx *gorm.DB) error) error {
	db, err := r.Tenant(churchID)
	if err != nil {
		return err
	}
	schema := SchemaName(churchID)
	return db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		set := fmt.Sprintf("SET search_path TO %s, public", pq.QuoteIdentifier(schema))
		if err := tx.Exec(set).Error; err != nil {
			return err
		}
		return fn(tx)
	})
}

// WithShared executa fn contra o pool do plano de controle — sem troca de
// search_path.
func (r *Registry) WithShared(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, err := r.Shared()
	if err != nil {
		return err
	}
	return fn(db.WithContext(ctx))
}

/* ==========================
   Atalhos raw (query parametrizada)
========================== */

// TenantExec roda um statement parametrizado no schema da igreja.
func (r *Registry) TenantExec(ctx context.Context, churchID uuid.UUID, query string, args ...any) error {
	return r.WithTenant(ctx, churchID, func(tx *gorm.DB) error {
		return tx.Exec(query, args...).Error
	})
}

// TenantRaw roda uma consulta parametrizada no schema da igreja e faz scan
// do resultado em dest.
func (r *Registry) TenantRaw(ctx context.Context, churchID uuid.UUID, dest any, query string, args ...any) error {
	return r.WithTenant(ctx, churchID, func(tx *gorm.DB) error {
		return tx.Raw(query, args...).Scan(dest).Error
	})
}

// SharedExec roda um statement no plano de controle.
func (r *Registry) SharedExec(ctx context.Context, query string, args ...any) error {
	return r.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Exec(query, args...).Error
	})
}

// SharedRaw roda uma consulta no plano de controle com scan em dest.
func (r *Registry) SharedRaw(ctx context.Context, dest any, query string, args ...any) error {
	return r.WithShared(ctx, func(tx *gorm.DB) error {
		return tx.Raw(query, args...).Scan(dest).Error
	})
}
