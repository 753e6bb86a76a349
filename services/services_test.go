package services

import (
	"testing"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
	return db
}

// Run a test inside a transaction and roll it back afterwards.
func withTestTransaction(t *testing.T, testFunc func(tx *gorm.DB)) {
	db := getTestDB()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatal(tx.Error)
	}

	defer tx.Rollback()

	testFunc(tx)
}

func seedCatalog(t *testing.T, db *gorm.DB) (entity.Category, entity.MenuItem, entity.MenuItem) {
	t.Helper()

	cat := entity.Category{Slug: "mains", Title: "Mains"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	pasta := entity.MenuItem{Title: "Pasta", Price: decimal.RequireFromString("8.50"), Inventory: 10, CategoryID: cat.ID}
	pizza := entity.MenuItem{Title: "Pizza", Price: decimal.RequireFromString("12.00"), Inventory: 5, CategoryID: cat.ID}
	if err := db.Create(&pasta).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&pizza).Error; err != nil {
		t.Fatal(err)
	}
	return cat, pasta, pizza
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) entity.User {
	t.Helper()

	u := entity.User{
		Username: username,
		Email:    username + "@littlelemon.test",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
	return u
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}
