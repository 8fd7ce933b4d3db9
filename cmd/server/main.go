package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"socialgraph/internal/config"
	"socialgraph/internal/domain"
	"socialgraph/internal/repository/memory"
	"socialgraph/internal/service"
	"socialgraph/internal/transport/http/handlers"
	"socialgraph/internal/transport/http/middleware"
	"socialgraph/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Stores: process memory is the authoritative state; member types are
	// seeded once and only patched afterwards.
	userRepo := memory.NewUserRepo()
	profileRepo := memory.NewProfileRepo()
	postRepo := memory.NewPostRepo()
	memberTypeRepo := memory.NewMemberTypeRepo(domain.DefaultMemberTypes())

	// Event feed
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	userService := service.NewUserService(userRepo, profileRepo, postRepo, notifier)
	profileService := service.NewProfileService(profileRepo, userRepo, memberTypeRepo, notifier)
	postService := service.NewPostService(postRepo, userRepo, notifier)
	memberTypeService := service.NewMemberTypeService(memberTypeRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	postHandler := handlers.NewPostHandler(postService)
	memberTypeHandler := handlers.NewMemberTypeHandler(memberTypeService)

	mux := handlers.NewRouter(userHandler, profileHandler, postHandler, memberTypeHandler)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))

	handler := middleware.CORS(middleware.Logging(logger)(mux))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogDev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
