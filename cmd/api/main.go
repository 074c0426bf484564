package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hosteldesk/internal/config"
	"hosteldesk/internal/database"
	"hosteldesk/internal/middleware"
	"hosteldesk/internal/modules/booking"
	"hosteldesk/internal/modules/dashboard"
	"hosteldesk/internal/modules/hostel"
	"hosteldesk/internal/modules/payment"
	"hosteldesk/internal/modules/room"
	"hosteldesk/internal/modules/student"
	"hosteldesk/internal/modules/visitor"
	"hosteldesk/internal/pkg/logger"
	"hosteldesk/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("raw connection unavailable")
	}
	sqlxDB := sqlx.NewDb(sqlDB, database.DriverName(cfg.DatabaseURL))

	studentRepo := repository.NewStudentRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	dashboardRepo := repository.NewDashboardRepository(sqlxDB)

	studentHandler := student.NewHandler(student.NewService(studentRepo))
	hostelHandler := hostel.NewHandler(hostel.NewService(hostelRepo))
	roomHandler := room.NewHandler(room.NewService(roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, studentRepo))
	visitorHandler := visitor.NewHandler(visitor.NewService(visitorRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboardRepo, bookingRepo, visitorRepo))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hostel administration API running"})
		})

		studentHandler.RegisterRoutes(api)
		hostelHandler.RegisterRoutes(api)
		roomHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		paymentHandler.RegisterRoutes(api)
		visitorHandler.RegisterRoutes(api)
		dashboardHandler.RegisterRoutes(api)
	}

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
