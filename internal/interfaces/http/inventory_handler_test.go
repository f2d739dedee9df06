package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizstock/bizstock-api/internal/application/inventory"
	"github.com/bizstock/bizstock-api/internal/application/usecase"
	"github.com/bizstock/bizstock-api/internal/domain"
	"github.com/bizstock/bizstock-api/internal/domain/entity"
	"github.com/bizstock/bizstock-api/internal/domain/repository"
	apphttp "github.com/bizstock/bizstock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para los handlers: un almacén secuencial con snapshot/restore
// como rollback. Los tests de concurrencia viven en el paquete del motor; aquí
// solo interesa el mapeo HTTP.
// ──────────────────────────────────────────────────────────────────────────────

type stubStore struct {
	products  map[int64]*entity.Product
	movements []*entity.Movement
	nextMovID int64
}

func newStubStore(products ...*entity.Product) *stubStore {
	s := &stubStore{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

type stubTxRunner struct {
	store *stubStore
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	// snapshot para simular rollback
	qtys := make(map[int64]int64, len(r.store.products))
	for id, p := range r.store.products {
		qtys[id] = p.Quantity
	}
	movLen := len(r.store.movements)

	if err := fn(&stubProductRepo{store: r.store}, &stubMovementRepo{store: r.store}); err != nil {
		for id, q := range qtys {
			r.store.products[id].Quantity = q
		}
		r.store.movements = r.store.movements[:movLen]
		return err
	}
	return nil
}

type stubProductRepo struct {
	store *stubStore
}

func (r *stubProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }

func (r *stubProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }

func (r *stubProductRepo) Deactivate(ctx context.Context, id int64) error { return nil }

func (r *stubProductRepo) GetQuantity(ctx context.Context, id int64) (int64, error) {
	p, ok := r.store.products[id]
	if !ok || !p.Active {
		return 0, &domain.ProductNotFoundError{ProductID: id}
	}
	return p.Quantity, nil
}

func (r *stubProductRepo) GetQuantityForUpdate(ctx context.Context, id int64) (int64, error) {
	return r.GetQuantity(ctx, id)
}

func (r *stubProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) (int64, error) {
	p, ok := r.store.products[id]
	if !ok || !p.Active {
		return 0, nil
	}
	p.Quantity = quantity
	return 1, nil
}

func (r *stubProductRepo) ListCritical(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.Active && p.Quantity <= p.CriticalLevel {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *stubProductRepo) ListLow(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.Active && p.Quantity <= p.ReorderLevel && p.Quantity > p.CriticalLevel {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

type stubMovementRepo struct {
	store *stubStore
}

func (r *stubMovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	r.store.nextMovID++
	cp := *m
	cp.ID = r.store.nextMovID
	cp.CreatedAt = time.Now()
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *stubMovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for i := len(r.store.movements) - 1; i >= 0 && len(list) < limit; i-- {
		if r.store.movements[i].ProductID == productID {
			cp := *r.store.movements[i]
			list = append(list, &cp)
		}
	}
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildApp(store *stubStore) *fiber.App {
	productRepo := &stubProductRepo{store: store}
	movRepo := &stubMovementRepo{store: store}
	adjustUC := inventory.NewAdjustStockUseCase(&stubTxRunner{store: store}, productRepo, movRepo, time.Second)
	alertsUC := inventory.NewAlertsUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   productUC,
		AdjustStock: adjustUC,
		Alerts:      alertsUC,
	})
	return app
}

func testProduct(id, qty int64) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          "Cinta métrica",
		Price:         decimal.NewFromInt(9900),
		Quantity:      qty,
		ReorderLevel:  10,
		CriticalLevel: 3,
		Active:        true,
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func adjustBody(productID, qty int64, note string) map[string]any {
	return map[string]any{
		"product_id": productID,
		"quantity":   qty,
		"user_id":    7,
		"note":       note,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los endpoints de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestPostIn_RegistraEntrada(t *testing.T) {
	store := newStubStore(testProduct(1, 10))
	app := buildApp(store)

	resp := postJSON(t, app, "/api/inventory/in", adjustBody(1, 5, "restock"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(15), store.products[1].Quantity)
	assert.Len(t, store.movements, 1)
}

func TestPostOut_InsuficienteDevuelve409ConDisponible(t *testing.T) {
	store := newStubStore(testProduct(1, 15))
	app := buildApp(store)

	resp := postJSON(t, app, "/api/inventory/out", adjustBody(1, 20, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(body), "Disponible: 15",
		"el mensaje debe reportar el stock disponible")

	assert.Equal(t, int64(15), store.products[1].Quantity, "el rechazo no tiene efectos")
	assert.Empty(t, store.movements)
}

func TestPostOut_CantidadCeroDevuelve400(t *testing.T) {
	store := newStubStore(testProduct(1, 15))
	app := buildApp(store)

	resp := postJSON(t, app, "/api/inventory/out", adjustBody(1, 0, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestPostIn_ProductoDesconocidoDevuelve404(t *testing.T) {
	store := newStubStore(testProduct(1, 15))
	app := buildApp(store)

	resp := postJSON(t, app, "/api/inventory/in", adjustBody(999, 5, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "999", "la respuesta debe identificar el producto")
}

func TestPostIn_BodyInvalidoDevuelve400(t *testing.T) {
	store := newStubStore(testProduct(1, 15))
	app := buildApp(store)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/in", bytes.NewReader([]byte("{no-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestGetQuantity_DevuelveCantidadActual(t *testing.T) {
	store := newStubStore(testProduct(1, 42))
	app := buildApp(store)

	resp := get(t, app, "/api/inventory/1/quantity")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body["product_id"])
	assert.Equal(t, int64(42), body["quantity"])
}

func TestGetQuantity_IDInvalidoDevuelve400(t *testing.T) {
	store := newStubStore(testProduct(1, 42))
	app := buildApp(store)

	resp := get(t, app, "/api/inventory/abc/quantity")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMovements_OrdenDescendente(t *testing.T) {
	store := newStubStore(testProduct(1, 0))
	app := buildApp(store)

	for _, note := range []string{"primero", "segundo", "tercero"} {
		resp := postJSON(t, app, "/api/inventory/in", adjustBody(1, 1, note))
		resp.Body.Close()
	}

	resp := get(t, app, "/api/inventory/1/movements?limit=50")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total     int `json:"total"`
		Movements []struct {
			Note string `json:"note"`
			Type string `json:"type"`
		} `json:"movements"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 3, body.Total)
	assert.Equal(t, "tercero", body.Movements[0].Note, "el más reciente primero")
	assert.Equal(t, "primero", body.Movements[2].Note)
	assert.Equal(t, entity.MovementTypeIN, body.Movements[0].Type)
}

func TestGetAlertasCriticas(t *testing.T) {
	critical := testProduct(1, 2) // 2 <= critical 3
	healthy := testProduct(2, 50)
	store := newStubStore(critical, healthy)
	app := buildApp(store)

	resp := get(t, app, "/api/alerts/critical")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total  int `json:"total"`
		Alerts []struct {
			ProductID int64 `json:"product_id"`
		} `json:"alerts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, int64(1), body.Alerts[0].ProductID)
}
