package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	// Migrate the schema
	if err := db.AutoMigrate(
		&entity.MenuItem{}, &entity.Table{},
		&entity.Reservation{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.Inventory{},
	); err != nil {
		return err
	}
	return EnsureIndexes(db)
}

// EnsureIndexes creates the indexes AutoMigrate cannot express. The partial
// unique index is the authoritative backstop for the reservation conflict
// pre-check: at most one BOOKED reservation may hold a (table, date, time)
// slot, whatever path wrote the row.
func EnsureIndexes(g *gorm.DB) error {
	return g.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_booked_slot
		ON reservations(table_id, date, time)
		WHERE status = 'BOOKED' AND deleted_at IS NULL`).Error
}
