package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/config"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.cfg.config.JWT.Secret,
		Expiry: a.cfg.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}
