package seeds

import (
	"gorm.io/gorm"

	bootstrap "gymku_backend/internals/seeds/bootstrap"
)

// RunAllSeeds dipanggil manual saat setup environment baru
// (mis. lewat flag --seed atau one-off job), bukan di startup server.
func RunAllSeeds(db *gorm.DB) {
	bootstrap.SeedBootstrapFromJSON(db, "internals/seeds/bootstrap/data_bootstrap.json")
}
