package seeds

import (
	"log"

	superadmin "minhaigreja_backend/internals/seeds/users/superadmin"

	"gorm.io/gorm"
)

// RunAllSeeds roda os seeds do plano de controle. Idempotente: cada seed
// checa antes de inserir.
func RunAllSeeds(db *gorm.DB) {
	log.Println("[SEED] iniciando seeds...")

	superadmin.SeedSuperAdmin(db)

	log.Println("[SEED] seeds concluídos")
}
