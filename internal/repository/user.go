// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"membergate/internal/database"
	"membergate/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// GetUserByEmail 以 email 精確比對撈取使用者（大小寫敏感）
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, user_type, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	var userType string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&userType,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	u.UserType = model.UserType(userType)
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, user_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.UserType),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ListUsers 撈取全部使用者，不分頁（玩具規模可接受，規模化需加上分頁）
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, password_hash, user_type, created_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var userType string
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&userType,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		u.UserType = model.UserType(userType)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// SetUserType 無條件更新 user_type，重複設定同值為 no-op
func SetUserType(ctx context.Context, db database.DB, email string, userType model.UserType) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET user_type = $1 WHERE email = $2`,
		string(userType),
		email,
	)
	if err != nil {
		return fmt.Errorf("SetUserType: %w", err)
	}
	return nil
}

// IsUniqueViolation 判斷是否為唯一鍵衝突（SQLSTATE 23505）
// 註冊時兩個併發請求同時通過重複檢查，落敗的一方由此判斷
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
