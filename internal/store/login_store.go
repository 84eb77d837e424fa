package store

import (
	"context"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoginStore struct{ db *gorm.DB }

func (s *Store) Logins() *LoginStore { return &LoginStore{db: s.DB} }

// Create appends a login record. The table is append-only; records are
// never updated or deleted through this store.
func (ls *LoginStore) Create(ctx context.Context, l *domain.Login) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return translate(ls.db.WithContext(ctx).Create(l).Error)
}

func (ls *LoginStore) ListByUser(ctx context.Context, userID domain.UserID, limit int) ([]domain.Login, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var logins []domain.Login
	err := ls.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logins).Error
	if err != nil {
		return nil, translate(err)
	}
	return logins, nil
}
