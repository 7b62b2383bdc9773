package session

import (
	"context"
	"time"
)

// Session связывает идентификатор из cookie с аутентифицированным пользователем
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store хранит сессии на стороне сервера с фиксированным TTL
type Store interface {
	Create(ctx context.Context, userID int64) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
