package database

import (
	"gorm.io/gorm"

	"github.com/neutralpress/member-service/internal/domain"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
	)
}
