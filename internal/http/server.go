package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruddnjs9605/rank-my-luck/internal/http/handlers"
	"github.com/ruddnjs9605/rank-my-luck/internal/http/middleware"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/auth"
	"github.com/ruddnjs9605/rank-my-luck/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	accountHandler *handlers.AccountHandler
	playHandler    *handlers.PlayHandler
	rewardHandler  *handlers.RewardHandler
	rankingHandler *handlers.RankingHandler
	adminHandler   *handlers.AdminHandler
	errorHandler   *middleware.ErrorHandler
	adminToken     string
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	accountHandler *handlers.AccountHandler,
	playHandler *handlers.PlayHandler,
	rewardHandler *handlers.RewardHandler,
	rankingHandler *handlers.RankingHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	adminToken string,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		accountHandler: accountHandler,
		playHandler:    playHandler,
		rewardHandler:  rewardHandler,
		rankingHandler: rankingHandler,
		adminHandler:   adminHandler,
		errorHandler:   errorHandler,
		adminToken:     adminToken,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/nickname", s.accountHandler.RegisterNickname)
		}

		rankingRoutes := v1.Group("/ranking")
		{
			rankingRoutes.GET("", s.rankingHandler.GetRanking)
			rankingRoutes.GET("/daily/:date", s.rankingHandler.GetDailyRanking)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.accountHandler.GetAccountInfo)
				userRoutes.GET("/me/wallet", s.accountHandler.GetWallet)
				userRoutes.GET("/me/plays", s.playHandler.GetHistory)
			}

			protected.POST("/play", s.playHandler.Play)

			rewardRoutes := protected.Group("/rewards")
			{
				rewardRoutes.POST("/ad", s.rewardHandler.IssueAdReward)
			}

			referralRoutes := protected.Group("/referrals")
			{
				referralRoutes.POST("/claim", s.rewardHandler.ClaimReferral)
			}
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminMiddleware(s.adminToken))
		{
			admin.POST("/tournament/close", s.adminHandler.CloseTournament)
			admin.POST("/payouts/drain", s.adminHandler.DrainPayouts)
			admin.POST("/payouts/redrive/:date", s.adminHandler.RedrivePayouts)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
