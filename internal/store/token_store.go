package store

import (
	"context"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"gorm.io/gorm"
)

type TokenStore struct{ db *gorm.DB }

func (s *Store) Tokens() *TokenStore { return &TokenStore{db: s.DB} }

// Create persists a new access token. Fails with domain.ErrDuplicateKey on
// a value collision so the caller can retry with a fresh value.
func (ts *TokenStore) Create(ctx context.Context, tok *domain.AccessToken) error {
	if tok.CreatedAt.IsZero() {
		tok.CreatedAt = time.Now().UTC()
	}
	return translate(ts.db.WithContext(ctx).Create(tok).Error)
}

func (ts *TokenStore) GetByValue(ctx context.Context, value string) (*domain.AccessToken, error) {
	var tok domain.AccessToken
	if err := ts.db.WithContext(ctx).First(&tok, "value = ?", value).Error; err != nil {
		return nil, translate(err)
	}
	return &tok, nil
}

// Expire retires a token. Idempotent: expiring an already-expired or absent
// token is a no-op.
func (ts *TokenStore) Expire(ctx context.Context, value string) error {
	return translate(ts.db.WithContext(ctx).Model(&domain.AccessToken{}).
		Where("value = ?", value).
		Update("expired", true).Error)
}
