package app

import (
	"github.com/ruddnjs9605/rank-my-luck/internal/domain"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/external/points"
)

func (a *application) InitPointsService() domain.PointsService {
	return points.NewPointsService(
		a.cfg.config.Points.URL,
		a.cfg.config.Points.APIKey,
		a.cfg.config.Points.Timeout,
	)
}
