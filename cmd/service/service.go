// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"membergate/internal/cache"
	"membergate/internal/config"
	"membergate/internal/database"
	"membergate/internal/gallery"
	"membergate/internal/router"
	"membergate/internal/session"
	"membergate/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	mkdirAllFn      = os.MkdirAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if err := mkdirAllFn(cfg.ImageDir, 0o755); err != nil {
		return fmt.Errorf("建立圖庫目錄失敗: %v", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("模板解析失敗: %v", err)
	}

	sm := session.NewManager(rdb, cfg.SessionSecret)
	g := gallery.New(cfg.ImageDir)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, sm, g)

	return startServer(e, fmt.Sprintf(":%d", cfg.Port))
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
