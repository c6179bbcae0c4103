package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lawdesk/internal/core/auth"
	"lawdesk/internal/core/config"
	"lawdesk/internal/core/localstore"
	"lawdesk/internal/core/logger"
	"lawdesk/internal/core/server"
	"lawdesk/internal/feature/cases"
	"lawdesk/internal/feature/clients"
	"lawdesk/internal/feature/invoices"
	"lawdesk/internal/feature/settingsapi"
	"lawdesk/internal/seed"
	"lawdesk/internal/settings"
	"lawdesk/internal/store"
	"lawdesk/internal/transport/http/router"
	"lawdesk/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	// 本地 kv（失败直接 Fatal）
	kv, err := localstore.Open(cfg.Storage.Path, log)
	if err != nil {
		log.Fatal("open local store", zap.Error(err))
	}
	defer kv.Close()
	log.Info("local store ready", zap.String("path", cfg.Storage.Path))

	// 种子数据 → 内存 store
	st := store.New(seed.Cases(), seed.Invoices(), seed.Clients())

	// 账号目录 + 会话
	dir := users.NewDirectory(kv, log)
	mgr := auth.NewManager(dir, kv, log,
		time.Duration(cfg.Auth.LoginDelayMs)*time.Millisecond)
	mgr.Rehydrate()

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 功能模块
	svc := settings.NewService(kv, log)
	router.Register(cases.New(st))
	router.Register(invoices.New(st))
	router.Register(clients.New(st))
	router.Register(settingsapi.New(svc))

	r := router.NewAPIEngine(log, router.Deps{Users: dir, Sessions: mgr, JWT: jwter})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("backoffice api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("backoffice api start FAILED", zap.Error(err))
		}
	}()
	log.Info("backoffice api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("backoffice api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}
