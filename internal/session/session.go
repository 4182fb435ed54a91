// File: internal/session/session.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"membergate/internal/cache"
	"membergate/internal/model"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

// TTL 為工作階段固定存活時間，從發行起算，不滑動續期
const TTL = time.Hour

// CookieName 為攜帶 token 的 cookie 名稱
const CookieName = "mg_session"

const keyPrefix = "session:"

// Snapshot 是發行當下的使用者欄位快照
// 之後對 users 表的變更（例如降級）不會回寫到已發行的工作階段
type Snapshot struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	UserType model.UserType `json:"user_type"`
}

// Session 是以 token 為鍵，存放於快取中的工作階段紀錄
type Session struct {
	Token string
	User  Snapshot
}

// Manager 負責工作階段紀錄的建立、載入、銷毀與 cookie 傳輸
// 過期由快取層的 TTL 強制，應用程式不自行檢查時間
type Manager struct {
	cache   cache.Cache
	cookies *sessions.CookieStore
}

// NewManager 以快取與簽章金鑰建立 Manager
func NewManager(c cache.Cache, secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
	}
	return &Manager{cache: c, cookies: store}
}

func sessionKey(token string) string { return keyPrefix + token }

// Create 發行新 token 並寫入快取，TTL 固定一小時
func (m *Manager) Create(ctx context.Context, snap Snapshot) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("session.Create: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKey(token), payload, TTL).Err(); err != nil {
		return "", fmt.Errorf("session.Create: %w", err)
	}
	return token, nil
}

// Load 以 token 載入工作階段；不存在或已過期回傳 (nil, nil)
func (m *Manager) Load(ctx context.Context, token string) (*Session, error) {
	val, err := m.cache.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session.Load: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("session.Load: %w", err)
	}
	return &Session{Token: token, User: snap}, nil
}

// Destroy 刪除工作階段紀錄，token 不存在視為成功
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if err := m.cache.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("session.Destroy: %w", err)
	}
	return nil
}

// ReadToken 從簽章 cookie 取出 token，沒有或驗章失敗回傳空字串
func (m *Manager) ReadToken(r *http.Request) string {
	sess, _ := m.cookies.Get(r, CookieName)
	token, _ := sess.Values["token"].(string)
	return token
}

// WriteToken 將 token 寫入簽章 cookie
func (m *Manager) WriteToken(r *http.Request, w http.ResponseWriter, token string) error {
	sess, _ := m.cookies.Get(r, CookieName)
	sess.Values["token"] = token
	return sess.Save(r, w)
}

// ClearToken 使 cookie 立即失效
func (m *Manager) ClearToken(r *http.Request, w http.ResponseWriter) error {
	sess, _ := m.cookies.Get(r, CookieName)
	delete(sess.Values, "token")
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
