package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/database"
	"gorm.io/gorm"
)

func (a *application) InitDatabase() (*gorm.DB, error) {
	dbConfig := &database.Config{
		Host:            a.cfg.config.Database.Host,
		Port:            a.cfg.config.Database.Port,
		User:            a.cfg.config.Database.User,
		Password:        a.cfg.config.Database.Password,
		Name:            a.cfg.config.Database.Name,
		SSLMode:         a.cfg.config.Database.SSLMode,
		MaxIdleConns:    a.cfg.config.Database.MaxIdleConns,
		MaxOpenConns:    a.cfg.config.Database.MaxOpenConns,
		ConnMaxLifetime: a.cfg.config.Database.ConnMaxLifetime,
	}
	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return nil, err
	}
	return db.GetDB(), nil
}
