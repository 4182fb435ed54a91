// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config 集中所有環境設定
type Config struct {
	DatabaseURL   string // Postgres 連線字串（使用者資料）
	RedisAddr     string // Redis 位址（工作階段資料）
	RedisPassword string // Redis 密碼，可空
	RedisDB       int    // Redis 資料庫編號
	SessionSecret string // 工作階段 cookie 簽章金鑰
	Port          int    // HTTP 監聽埠
	ImageDir      string // 圖庫目錄，目錄列表即為圖片清單
}

// Load 從環境變數讀取設定，缺少必要變數時回傳錯誤
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Port:          3000,
		ImageDir:      getEnv("IMAGE_DIR", "./public/images"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("環境變數 SESSION_SECRET 未設定")
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("無效的 PORT: %q", v)
		}
		cfg.Port = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
