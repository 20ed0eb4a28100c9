package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ravaka/staffhub/internal/config"
	"github.com/ravaka/staffhub/internal/http/handlers"
	"github.com/ravaka/staffhub/internal/http/middlewares"
	"github.com/ravaka/staffhub/internal/observability"
	"github.com/ravaka/staffhub/internal/repo/memory"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func NewRouter(log *slog.Logger, cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(otelgin.Middleware("staffhub"))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	// the UI is served from file:// and arbitrary LAN hosts, so CORS stays
	// fully open; preflights answer 200 with an empty body
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// metrics
	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)
	r.Use(prom.GinHandleMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// health
	h := handlers.NewHealthHandler()
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// wire up the in-memory stores with the fixed seed data
	usersRepo := memory.NewUsersRepo(memory.SeedUsers()...)
	wardsRepo := memory.NewWardsRepo(memory.SeedWards()...)
	endorsementsRepo := memory.NewEndorsementsRepo()
	roomsRepo := memory.NewRoomsRepo()
	bookingsRepo := memory.NewBookingsRepo()

	authHandler := handlers.NewAuthHandler(usersRepo)
	usersHandler := handlers.NewUsersHandler(usersRepo)
	wardsHandler := handlers.NewWardsHandler(wardsRepo)
	endorsementsHandler := handlers.NewEndorsementsHandler(endorsementsRepo)
	roomsHandler := handlers.NewRoomsHandler(roomsRepo)
	bookingsHandler := handlers.NewBookingsHandler(bookingsRepo)

	api := r.Group("/api")

	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	api.GET("/users", usersHandler.List)
	api.POST("/users", usersHandler.Create)
	api.DELETE("/users/:email", usersHandler.Delete)
	api.GET("/pending-users", usersHandler.ListPending)
	api.POST("/approve-user", usersHandler.Approve)
	api.POST("/reject-user", usersHandler.Reject)

	api.GET("/wards", wardsHandler.List)
	api.POST("/wards", wardsHandler.Create)

	api.POST("/endorsements", endorsementsHandler.Create)
	api.GET("/endorsements/:email", endorsementsHandler.ListForUser)
	api.POST("/endorsements/:id/acknowledge", endorsementsHandler.Acknowledge)

	api.GET("/patient-rooms/:wardId", roomsHandler.ListByWard)
	api.POST("/patient-rooms", roomsHandler.Upsert)
	api.DELETE("/patient-rooms/:wardId/:roomNumber", roomsHandler.Delete)

	api.GET("/pth-bookings", bookingsHandler.List)
	api.POST("/pth-bookings", bookingsHandler.Create)
	api.DELETE("/pth-bookings/:id", bookingsHandler.Delete)

	// fixed HTML pages served from the web root
	static := handlers.NewStaticHandler(cfg.WebRoot)

	for route, file := range static.Pages() {
		r.GET(route, static.Serve(file))
	}

	r.NoRoute(func(ctx *gin.Context) {
		// bare OPTIONS without preflight headers still answers 200
		if ctx.Request.Method == http.MethodOptions {
			ctx.Status(http.StatusOK)
			return
		}

		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			handlers.RespondNotFound(ctx, "API endpoint not found")
			return
		}

		ctx.String(http.StatusNotFound, "Not Found")
	})

	return r
}
