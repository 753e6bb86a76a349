package repository

import (
	"time"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	return items, err
}

// ListForUpdate reads the lines inside the checkout transaction, so the
// consume-or-abort guard in DeleteLines works against that same snapshot.
func (r *CartRepository) ListForUpdate(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// UpsertLine inserts the line or folds it into the existing (user, item) row
// in one statement. The single upsert works the same on sqlite and postgres
// and keeps concurrent adds from losing an increment.
func (r *CartRepository) UpsertLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + ?", line.Quantity),
			"price":      gorm.Expr("cart_items.unit_price * (cart_items.quantity + ?)", line.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(line).Error
}

// DeleteLines consumes exactly the lines a checkout read. A shortfall in rows
// affected means another checkout took some of them first.
func (r *CartRepository) DeleteLines(tx *gorm.DB, userID uint, ids []uint) (int64, error) {
	res := tx.Unscoped().
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ClearCart drops every line the user owns; succeeds on an empty cart too.
// Hard delete: a soft-deleted row would still occupy the unique (user, item)
// slot and block the next add.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
