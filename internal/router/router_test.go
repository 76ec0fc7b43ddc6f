package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Cart{},
		&models.CartItem{},
		&models.Rating{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.JWT.AccessExpireHours = 1
	cfg.JWT.RefreshExpireHours = 24
	cfg.Security.PasswordPolicy.MinLength = 6

	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/usuarios", "", gin.H{
		"username": "maria",
		"password": "segredo123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "maria",
		"password": "segredo123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens, got %s", w.Body.String())
	}
	return pair.Access
}

func TestHealthEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := setupTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/carrinho", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/carrinho", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Detail == "" {
		t.Fatalf("expected detail message, got %s", w.Body.String())
	}
}

func TestCartCheckoutFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/produtos", token, gin.H{
		"descricao": "Arroz branco 5kg",
		"valor":     "21.90",
		"estoque":   10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var product struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/carrinho/adicionar", token, gin.H{
		"itens": []gin.H{{"produto": product.ID, "quantidade": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create cart: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var cart struct {
		ID    uint   `json:"id"`
		Total string `json:"valor_total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cart.Total != "43.80" {
		t.Fatalf("expected total 43.80, got %s", cart.Total)
	}

	w = doJSON(t, r, http.MethodGet, "/carrinho", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/pedidos/criar", token, gin.H{
		"carrinhos": []uint{cart.ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var order struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Status != "Aberto" {
		t.Fatalf("expected status Aberto, got %s", order.Status)
	}

	w = doJSON(t, r, http.MethodPut, "/pedidos/atualizar/1", token, gin.H{"status": "Aberto"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("same-status update: expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Detail != "Pedido já se encontra Aberto." {
		t.Fatalf("unexpected detail: %q", detail.Detail)
	}

	w = doJSON(t, r, http.MethodDelete, "/pedidos/cancelar/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel order: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCartOutOfStockBody(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/produtos", token, gin.H{
		"descricao": "Café 500g",
		"valor":     "15.00",
		"estoque":   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d", w.Code)
	}
	var product struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/carrinho/adicionar", token, gin.H{
		"itens": []gin.H{{"produto": product.ID, "quantidade": 3}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Items []struct {
			ProductID      uint   `json:"produto"`
			Quantity       int    `json:"quantidade"`
			Detail         string `json:"detail"`
			AvailableStock int    `json:"estoque_disponivel"`
		} `json:"itens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected 1 rejected item, got %s", w.Body.String())
	}
	item := body.Items[0]
	if item.ProductID != product.ID || item.Quantity != 3 || item.AvailableStock != 1 {
		t.Fatalf("unexpected rejection detail: %+v", item)
	}
	if item.Detail != "Produto não possui estoque" {
		t.Fatalf("unexpected detail message: %q", item.Detail)
	}
}

func TestRatingEndpointBounds(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/produtos", token, gin.H{
		"descricao": "Chocolate 90g",
		"valor":     "6.00",
		"estoque":   5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d", w.Code)
	}
	var product struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/produtos/1/avaliacao", token, gin.H{"nota": 5.01})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for score 5.01, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/produtos/1/avaliacao", token, gin.H{"nota": 4.5})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for score 4.5, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/produtos/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get product: expected 200, got %d", w.Code)
	}
	var detail struct {
		AverageScore string `json:"nota_media"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.AverageScore != "4.50" {
		t.Fatalf("expected nota_media 4.50, got %s", detail.AverageScore)
	}
}

func TestLoginRefreshFlow(t *testing.T) {
	r := setupTestRouter(t)
	registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "maria",
		"password": "segredo123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", w.Code)
	}
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode pair: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/login/refresh", "", gin.H{"refresh": pair.Refresh})
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	// An access token must not pass as a refresh token.
	w = doJSON(t, r, http.MethodPost, "/login/refresh", "", gin.H{"refresh": pair.Access})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh with access token: expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "maria",
		"password": "errada",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", w.Code)
	}
}

func TestUserRetrieveAndUpdateByID(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/usuarios", "", gin.H{
		"username": "joao",
		"password": "segredo123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register second user: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var other struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &other); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/usuarios/%d", other.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("retrieve by id: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var fetched struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if fetched.Username != "joao" {
		t.Fatalf("expected username joao, got %q", fetched.Username)
	}

	w = doJSON(t, r, http.MethodGet, "/usuarios/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("retrieve missing id: expected 404, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/usuarios/%d", other.ID), token, gin.H{"first_name": "Intruso"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("update another account: expected 403, got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/usuarios/perfil", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", w.Code)
	}
	var mine struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode profile: %v", err)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/usuarios/%d", mine.ID), token, gin.H{"first_name": "Maria"})
	if w.Code != http.StatusOK {
		t.Fatalf("update own account by id: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var updated struct {
		FirstName string `json:"first_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated user: %v", err)
	}
	if updated.FirstName != "Maria" {
		t.Fatalf("expected first_name Maria, got %q", updated.FirstName)
	}
}
