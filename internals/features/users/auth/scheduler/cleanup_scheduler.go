// internals/features/users/auth/scheduler/cleanup_scheduler.go
package scheduler

import (
	"log"
	"time"

	authRepo "minhaigreja_backend/internals/features/users/auth/repository"

	database "minhaigreja_backend/internals/databases"
)

// StartBlacklistCleanupScheduler remove tokens expirados da blacklist a cada hora.
func StartBlacklistCleanupScheduler(reg *database.Registry) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			db, err := reg.Shared()
			if err != nil {
				log.Printf("[SCHEDULER] ⚠️ banco indisponível, pulando limpeza: %v", err)
				continue
			}
			removed, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[SCHEDULER] ❌ falha ao limpar blacklist: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("[SCHEDULER] 🧹 %d tokens expirados removidos da blacklist", removed)
			}
		}
	}()
}
