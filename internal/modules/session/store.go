package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/giftpack"
	"fioriforyou.com/app/internal/modules/studio"
)

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Migrate creates the session tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Session{})
}

// GetOrCreate loads the session for id, creating a fresh one when id is
// empty or unknown (cookie cleared, expired row).
func (s *Store) GetOrCreate(ctx context.Context, id string) (Session, error) {
	if id != "" {
		var sess Session
		err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, err
		}
	}

	now := time.Now()
	sess := Session{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Store) SavePackType(ctx context.Context, id, packType string) error {
	return s.update(ctx, id, map[string]any{"pack_type": packType})
}

func (s *Store) SaveNewsletterDiscount(ctx context.Context, id string, has bool) error {
	return s.update(ctx, id, map[string]any{"has_newsletter_discount": has})
}

func (s *Store) SaveCart(ctx context.Context, id string, c cart.Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"cart_lines": b})
}

func (s *Store) SaveSlots(ctx context.Context, id string, snap giftpack.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"gift_pack_slots": b})
}

func (s *Store) SaveCanvas(ctx context.Context, id string, snap studio.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"canvas_scene": b})
}

func (s *Store) SaveUserDetails(ctx context.Context, id string, d UserDetails) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"user_details": b})
}

func (s *Store) SavePendingOrder(ctx context.Context, id string, po PendingOrder) error {
	b, err := json.Marshal(po)
	if err != nil {
		return err
	}
	return s.update(ctx, id, map[string]any{"pending_order": b})
}

// ClearCheckout wipes the order-scoped state after a successful submission.
// The pack type goes too: it is chosen once per shopping session.
func (s *Store) ClearCheckout(ctx context.Context, id string) error {
	return s.update(ctx, id, map[string]any{
		"cart_lines":              nil,
		"gift_pack_slots":         nil,
		"pending_order":           nil,
		"pack_type":               "",
		"has_newsletter_discount": false,
	})
}

func (s *Store) update(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	return withTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		res := tx.WithContext(ctx).Model(&Session{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Cart decodes the stored cart, empty when never saved.
func (sess Session) Cart() (cart.Cart, error) {
	var c cart.Cart
	if len(sess.CartLines) == 0 {
		return c, nil
	}
	err := json.Unmarshal(sess.CartLines, &c)
	return c, err
}

// Configurator rebuilds the gift-pack state, a fresh one when never saved.
func (sess Session) Configurator() (*giftpack.Configurator, error) {
	if len(sess.GiftPackSlots) == 0 {
		return giftpack.NewConfigurator(sess.PackType), nil
	}
	var snap giftpack.Snapshot
	if err := json.Unmarshal(sess.GiftPackSlots, &snap); err != nil {
		return nil, err
	}
	return giftpack.Restore(snap), nil
}

// Canvas rebuilds the personalization scene; ok is false when no canvas was
// ever opened.
func (sess Session) Canvas() (*studio.Scene, bool, error) {
	if len(sess.CanvasScene) == 0 {
		return nil, false, nil
	}
	var snap studio.Snapshot
	if err := json.Unmarshal(sess.CanvasScene, &snap); err != nil {
		return nil, false, err
	}
	return studio.RestoreScene(snap), true, nil
}

// Details decodes the checkout contact record; ok is false when the shopper
// never completed the details step.
func (sess Session) Details() (UserDetails, bool) {
	if len(sess.UserDetails) == 0 {
		return UserDetails{}, false
	}
	var d UserDetails
	if err := json.Unmarshal(sess.UserDetails, &d); err != nil {
		return UserDetails{}, false
	}
	return d, true
}

// Pending decodes the pending-order snapshot.
func (sess Session) Pending() (PendingOrder, bool) {
	if len(sess.PendingOrder) == 0 {
		return PendingOrder{}, false
	}
	var po PendingOrder
	if err := json.Unmarshal(sess.PendingOrder, &po); err != nil {
		return PendingOrder{}, false
	}
	return po, po.OrderID != ""
}
