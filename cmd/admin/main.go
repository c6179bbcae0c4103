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
	"lawdesk/internal/feature/settingsapi"
	"lawdesk/internal/feature/usersadmin"
	"lawdesk/internal/settings"
	"lawdesk/internal/transport/http/router"
	"lawdesk/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	kv, err := localstore.Open(cfg.Storage.Path, log)
	if err != nil {
		log.Fatal("open local store", zap.Error(err))
	}
	defer kv.Close()

	dir := users.NewDirectory(kv, log)
	mgr := auth.NewManager(dir, kv, log,
		time.Duration(cfg.Auth.LoginDelayMs)*time.Millisecond)
	mgr.Rehydrate()

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 管理端模块：账号管理 + 律所信息/logo
	svc := settings.NewService(kv, log)
	router.Register(usersadmin.New(dir))
	router.Register(settingsapi.New(svc))

	r := router.NewAdminEngine(log, router.Deps{Users: dir, Sessions: mgr, JWT: jwter})

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()
	log.Info("admin api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
}
