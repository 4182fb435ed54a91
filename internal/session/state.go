// File: internal/session/state.go
package session

import "membergate/internal/model"

// State 是每個請求攜帶的授權狀態標記
type State int

const (
	StateAnonymous State = iota
	StateUser
	StateAdmin
)

// Identity 將授權狀態與工作階段綁在一起，隨請求傳遞，不依賴全域狀態
// 授權判斷只看快照內容，不回查 users 表
type Identity struct {
	State   State
	Session *Session
}

// Anonymous 回傳未登入身分
func Anonymous() Identity {
	return Identity{State: StateAnonymous}
}

// IdentityOf 依工作階段快照的 user_type 決定授權狀態
func IdentityOf(s *Session) Identity {
	if s == nil {
		return Anonymous()
	}
	if s.User.UserType == model.UserTypeAdmin {
		return Identity{State: StateAdmin, Session: s}
	}
	return Identity{State: StateUser, Session: s}
}

// LoggedIn 回報是否已登入
func (i Identity) LoggedIn() bool { return i.State != StateAnonymous }

// Admin 回報是否具管理員權限
func (i Identity) Admin() bool { return i.State == StateAdmin }

// DisplayName 取得顯示名稱，未登入時為空字串
func (i Identity) DisplayName() string {
	if i.Session == nil {
		return ""
	}
	return i.Session.User.Name
}

// Email 取得工作階段快照中的 email，未登入時為空字串
func (i Identity) Email() string {
	if i.Session == nil {
		return ""
	}
	return i.Session.User.Email
}
