package repo

import (
	"gorm.io/gorm"

	"github.com/quantlark/oi-sentinel/internal/entity"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.SnapshotRow{})
}
