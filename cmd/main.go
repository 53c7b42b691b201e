package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/clipstream/account-server/internal/api/http/context"
	"github.com/clipstream/account-server/internal/api/http/handler"
	"github.com/clipstream/account-server/internal/api/http/router"
	httpServer "github.com/clipstream/account-server/internal/api/http/server"
	"github.com/clipstream/account-server/internal/config"
	"github.com/clipstream/account-server/internal/logger"
	"github.com/clipstream/account-server/internal/model"
	"github.com/clipstream/account-server/internal/password"
	"github.com/clipstream/account-server/internal/repository/postgres"
	"github.com/clipstream/account-server/internal/server"
	"github.com/clipstream/account-server/internal/service"
	storage "github.com/clipstream/account-server/internal/storage/minio"
	"github.com/clipstream/account-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)

	tokenManager, err := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	tokenService := service.NewTokenService(tokenManager, userRepo, logger)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	hasher := password.NewBcrypt(cfg.Password.Cost)
	userService := service.NewUser(userRepo, hasher, storageClient, tokenService, logger)

	if err := os.MkdirAll(cfg.Uploads.TempDir, 0o755); err != nil {
		logger.Fatal("failed to create upload temp dir", "error", err)
	}

	ctxMgr := httpctx.NewManager()
	cookies := handler.NewCookieHelper(cfg.HTTP.CookieDomain, cfg.HTTP.CookieSecure, int(cfg.JWT.RefreshTTL.Seconds()))

	r := router.New(userService, tokenService, userRepo, ctxMgr, cookies, cfg.Uploads.TempDir, logger)
	engine := r.Register()
	engine.MaxMultipartMemory = cfg.Uploads.MaxSizeMiB << 20

	srv := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
