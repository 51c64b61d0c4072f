// Package main Rank My Luck API
//
// Rank My Luck is a compounding-probability game economy service. Players
// wager coins on probability rolls, chasing the rarest cumulative score on a
// daily leaderboard, with two key responsibilities:
//
//  1. Running the game economy: coin debits, rewarded-action credits and
//     referral bonuses, all idempotent under client retries.
//
//  2. Settling the daily tournament window: freezing the leaderboard,
//     computing the prize pool and dispatching payouts to an external
//     points service.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	"github.com/ruddnjs9605/rank-my-luck/internal/app"
)

// @title Rank My Luck API Service
// @version 1.0
// @description Rank My Luck is a compounding-probability game economy and daily tournament settlement service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Shared admin token for operational trigger endpoints.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
