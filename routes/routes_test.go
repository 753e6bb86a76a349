package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fer-Urbina/LittleLemon/configs"
	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testCfg = &configs.Config{
	JWTSecret: "test-secret",
	JWTTTL:    time.Hour,
	PageSize:  10,
}

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

func withTestRouter(t *testing.T, testFunc func(tx *gorm.DB, r *gin.Engine)) {
	gin.SetMode(gin.TestMode)
	db := getTestDB()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatal(tx.Error)
	}
	defer tx.Rollback()

	r := gin.New()
	RegisterRoutes(r, tx, testCfg)

	testFunc(tx, r)
}

func seedUser(t *testing.T, db *gorm.DB, username, role string) (entity.User, string) {
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
	token, err := utils.GenerateToken(u.ID, u.Role, testCfg.JWTSecret, testCfg.JWTTTL)
	if err != nil {
		t.Fatal(err)
	}
	return u, token
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) entity.MenuItem {
	t.Helper()

	cat := entity.Category{Slug: "mains", Title: "Mains"}
	if err := db.Where(&cat).FirstOrCreate(&cat).Error; err != nil {
		t.Fatal(err)
	}
	m := entity.MenuItem{Title: title, Price: decimal.RequireFromString(price), Inventory: 10, CategoryID: cat.ID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}
	return m
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return e
}

func TestHealth(t *testing.T) {
	withTestRouter(t, func(_ *gorm.DB, r *gin.Engine) {
		w := doJSON(r, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCatalogRoleGating(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		_, customerTok := seedUser(t, db, "web-cust", entity.RoleCustomer)
		_, managerTok := seedUser(t, db, "web-mgr", entity.RoleManager)

		cat := entity.Category{Slug: "mains", Title: "Mains"}
		assert.NoError(t, db.Create(&cat).Error)

		item := map[string]any{"title": "Pasta", "price": "8.50", "inventory": 10, "categoryId": cat.ID}

		// anonymous and customer may not create
		assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodPost, "/menu-items", "", item).Code)
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPost, "/menu-items", customerTok, item).Code)

		w := doJSON(r, http.MethodPost, "/menu-items", managerTok, item)
		assert.Equal(t, http.StatusCreated, w.Code)

		// everyone may browse
		assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/menu-items", "", nil).Code)
		assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/get-all-menu-items", "", nil).Code)
	})
}

func TestCreateMenuItemValidation(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		_, managerTok := seedUser(t, db, "web-mgr2", entity.RoleManager)

		cat := entity.Category{Slug: "mains", Title: "Mains"}
		assert.NoError(t, db.Create(&cat).Error)

		// missing price
		w := doJSON(r, http.MethodPost, "/menu-items", managerTok, map[string]any{
			"title": "Pasta", "inventory": 10, "categoryId": cat.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// missing inventory
		w = doJSON(r, http.MethodPost, "/menu-items", managerTok, map[string]any{
			"title": "Pasta", "price": "8.50", "categoryId": cat.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMenuItemsPaginationPastEnd(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		seedMenuItem(t, db, "Pasta", "8.50")
		seedMenuItem(t, db, "Pizza", "12.00")

		w := doJSON(r, http.MethodGet, "/menu-items?perpage=2&page=99", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var items []entity.MenuItem
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &items))
		assert.Empty(t, items)
	})
}

func TestCartAndCheckoutFlow(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		user, tok := seedUser(t, db, "web-flow", entity.RoleCustomer)
		pasta := seedMenuItem(t, db, "Pasta", "8.50")

		// add twice, quantities merge
		add := func(qty int) *httptest.ResponseRecorder {
			return doJSON(r, http.MethodPost, "/add-to-cart", tok, map[string]any{
				"menuItemId": pasta.ID, "quantity": qty,
			})
		}
		assert.Equal(t, http.StatusCreated, add(2).Code)
		assert.Equal(t, http.StatusCreated, add(3).Code)

		w := doJSON(r, http.MethodGet, "/get-cart-items", tok, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var lines []entity.CartItem
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &lines))
		if assert.Len(t, lines, 1) {
			assert.Equal(t, 5, lines[0].Quantity)
		}

		// checkout
		w = doJSON(r, http.MethodPost, "/create-order", tok, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		var order entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
		assert.Equal(t, user.ID, order.UserID)
		assert.Len(t, order.OrderItems, 1)
		assert.Equal(t, 5, order.OrderItems[0].Quantity)

		// cart is now empty; a second checkout fails
		w = doJSON(r, http.MethodGet, "/get-cart-items", tok, nil)
		lines = nil
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &lines))
		assert.Empty(t, lines)
		assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/create-order", tok, nil).Code)

		// clearing the (empty) cart is idempotent
		assert.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, "/delete-cart-item", tok, nil).Code)
	})
}

func TestAddToCartUnknownItemIs404(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		_, tok := seedUser(t, db, "web-miss", entity.RoleCustomer)

		w := doJSON(r, http.MethodPost, "/add-to-cart", tok, map[string]any{"menuItemId": 9999})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeliveryWorkflowOverHTTP(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		_, custTok := seedUser(t, db, "web-cust3", entity.RoleCustomer)
		_, mgrTok := seedUser(t, db, "web-mgr3", entity.RoleManager)
		crew, crewTok := seedUser(t, db, "web-rider3", entity.RoleDelivery)
		_, otherTok := seedUser(t, db, "web-rider3b", entity.RoleDelivery)
		pasta := seedMenuItem(t, db, "Pasta", "8.50")

		doJSON(r, http.MethodPost, "/add-to-cart", custTok, map[string]any{"menuItemId": pasta.ID, "quantity": 1})
		w := doJSON(r, http.MethodPost, "/create-order", custTok, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		var order entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &order))

		assignPath := fmt.Sprintf("/assign-order-to-delivery/%d", order.ID)
		deliverPath := fmt.Sprintf("/mark-order-as-delivered/%d", order.ID)

		// customers may not assign
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPost, assignPath, custTok, map[string]any{"username": crew.Username}).Code)

		// manager inspects then assigns
		assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, assignPath, mgrTok, nil).Code)
		assert.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, assignPath, mgrTok, map[string]any{"username": crew.Username}).Code)

		// only the assignee may deliver
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPost, deliverPath, otherTok, nil).Code)
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPost, deliverPath, custTok, nil).Code)

		w = doJSON(r, http.MethodPost, deliverPath, crewTok, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var delivered entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &delivered))
		assert.Equal(t, entity.StatusDelivered, delivered.Status)

		// delivered is terminal
		assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, deliverPath, crewTok, nil).Code)

		// the crew sees their assigned orders
		w = doJSON(r, http.MethodGet, "/get-orders-for-delivery", crewTok, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var assigned []entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &assigned))
		assert.Len(t, assigned, 1)

		// a customer role is rejected from the delivery listing
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, "/get-orders-for-delivery", custTok, nil).Code)
	})
}

func TestCustomerOrdersVisibility(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		alice, aliceTok := seedUser(t, db, "web-alice", entity.RoleCustomer)
		_, bobTok := seedUser(t, db, "web-bob", entity.RoleCustomer)
		_, mgrTok := seedUser(t, db, "web-boss", entity.RoleManager)
		pasta := seedMenuItem(t, db, "Pasta", "8.50")

		for _, tok := range []string{aliceTok, bobTok} {
			doJSON(r, http.MethodPost, "/add-to-cart", tok, map[string]any{"menuItemId": pasta.ID, "quantity": 1})
			assert.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/create-order", tok, nil).Code)
		}

		w := doJSON(r, http.MethodGet, "/get-customer-orders", aliceTok, nil)
		var own []entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &own))
		if assert.Len(t, own, 1) {
			assert.Equal(t, alice.ID, own[0].UserID)
		}

		w = doJSON(r, http.MethodGet, "/get-customer-orders", mgrTok, nil)
		var all []entity.Order
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &all))
		assert.Len(t, all, 2)
	})
}

func TestManagerPromotionIsAdminOnly(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		_, mgrTok := seedUser(t, db, "web-mgr4", entity.RoleManager)
		_, adminTok := seedUser(t, db, "web-admin4", entity.RoleAdmin)
		target, _ := seedUser(t, db, "web-target4", entity.RoleCustomer)

		body := map[string]any{"username": target.Username}

		// managers cannot mint other managers
		assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPost, "/groups/manager/user", mgrTok, body).Code)

		assert.Equal(t, http.StatusOK, doJSON(r, http.MethodPost, "/groups/manager/user", adminTok, body).Code)
		var got entity.User
		db.First(&got, target.ID)
		assert.Equal(t, entity.RoleManager, got.Role)

		// unknown username is a 404
		assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/groups/manager/user", adminTok, map[string]any{"username": "ghost"}).Code)
	})
}

func TestAuthRegisterAndLogin(t *testing.T) {
	withTestRouter(t, func(db *gorm.DB, r *gin.Engine) {
		w := doJSON(r, http.MethodPost, "/auth/register", "", map[string]any{
			"username": "newbie", "email": "newbie@littlelemon.test", "password": "secret1",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(r, http.MethodPost, "/auth/login", "", map[string]any{
			"email": "newbie@littlelemon.test", "password": "secret1",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Token string      `json:"token"`
			User  entity.User `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.NotEmpty(t, data.Token)
		assert.Equal(t, entity.RoleCustomer, data.User.Role)

		w = doJSON(r, http.MethodPost, "/auth/login", "", map[string]any{
			"email": "newbie@littlelemon.test", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
