package main

import (
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/MentorMountain/blog/app/auth"
	"github.com/MentorMountain/blog/app/config"
	"github.com/MentorMountain/blog/app/repositories"
	"github.com/MentorMountain/blog/app/routes"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("invalid configuration", zap.Error(err))
	}

	// One store directory per project so environments never share data.
	opts := badger.DefaultOptions(filepath.Join(cfg.DataDir, cfg.ProjectID)).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		zap.L().Fatal("failed to open store", zap.Error(err))
	}
	defer db.Close()

	repo := repositories.NewBadgerPostRepository(db, cfg.CollectionName)
	verifier := auth.NewHMACVerifier(cfg.SharedSecret, cfg.GatewayDomain)
	router := routes.SetupRoutes(cfg, verifier, repo)

	addr := fmt.Sprintf(":%d", cfg.Port)
	zap.L().Info("blog service listening", zap.String("addr", addr))
	if err := routes.StartServer(addr, router); err != nil {
		zap.L().Fatal("server error", zap.Error(err))
	}
}
