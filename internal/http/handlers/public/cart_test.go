package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glowderma/glowderma/internal/models"
	"github.com/glowderma/glowderma/internal/provider"
	"github.com/glowderma/glowderma/internal/repository"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartHandlerTest(t *testing.T) (*Handler, *service.CartService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:cart_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Coupon{}, &models.CartLine{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cartService := service.NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewCouponRepository(db),
		service.NewNotificationService(nil),
	)
	h := &Handler{Container: &provider.Container{CartService: cartService}}
	return h, cartService, db
}

func TestUpdateCartItemQuantityBelowOneIsNoOp(t *testing.T) {
	h, cartService, db := setupCartHandlerTest(t)

	category := models.Category{Name: "Serums", Slug: "serums"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Slug:       "hydra-booster",
		Name:       "Hydra Booster",
		Price:      models.NewMoneyFromInt(215000),
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := cartService.AddItem("s1", product.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	for _, quantity := range []int{0, -3} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1",
			strings.NewReader(fmt.Sprintf(`{"quantity":%d}`, quantity)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(CartSessionHeader, "s1")
		c.Request = req
		c.Params = gin.Params{{Key: "product_id", Value: fmt.Sprint(product.ID)}}

		h.UpdateCartItem(c)

		if w.Code != http.StatusOK {
			t.Fatalf("quantity %d: expected status 200, got %d", quantity, w.Code)
		}
		var resp struct {
			StatusCode int                  `json:"status_code"`
			Data       *service.CartSummary `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.StatusCode != 0 {
			t.Fatalf("quantity %d: expected status_code 0, got %d", quantity, resp.StatusCode)
		}
		if len(resp.Data.Lines) != 1 || resp.Data.Lines[0].Quantity != 1 {
			t.Fatalf("quantity %d: line must stay unchanged, got %+v", quantity, resp.Data.Lines)
		}
	}
}
