package personalization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fioriforyou.com/app/internal/modules/category"
	"fioriforyou.com/app/internal/shared/apperr"
)

// Record holds the latest saved personalization text for a product,
// overwritten on each save. Scoped to the shopper session, independent of
// the cart.
type Record struct {
	SessionID string `gorm:"primaryKey;size:64"`
	ProductID int    `gorm:"primaryKey"`
	Text      string `gorm:"size:255"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "personalizations" }

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Record{})
}

// ValidateText enforces the per-category length cap. Kept separate from
// Save so dialogs can check while typing.
func ValidateText(itemgroup, text string) error {
	rule := category.RuleFor(itemgroup)
	if n := len([]rune(text)); n > rule.MaxPersonalization {
		return apperr.InvalidErr(
			fmt.Sprintf("La personnalisation est limitée à %d caractères maximum", rule.MaxPersonalization),
			map[string]string{"text": fmt.Sprintf("max %d caractères", rule.MaxPersonalization)},
		)
	}
	return nil
}

// Save upserts the text for (session, product). Oversized text is rejected
// and the stored value stays untouched.
func (s *Store) Save(ctx context.Context, sessionID string, productID int, itemgroup, text string) error {
	if err := ValidateText(itemgroup, text); err != nil {
		return err
	}
	rec := Record{SessionID: sessionID, ProductID: productID, Text: text, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(&rec).Error
}

// Get returns the saved text for a product; ok is false when nothing was
// ever saved.
func (s *Store) Get(ctx context.Context, sessionID string, productID int) (string, bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		First(&rec, "session_id = ? AND product_id = ?", sessionID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Text, true, nil
}

// GetAll returns the productID -> text map for prefilling editors.
func (s *Store) GetAll(ctx context.Context, sessionID string) (map[int]string, error) {
	var recs []Record
	if err := s.db.WithContext(ctx).Find(&recs, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	out := make(map[int]string, len(recs))
	for _, r := range recs {
		out[r.ProductID] = r.Text
	}
	return out, nil
}
