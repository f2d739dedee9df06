package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizstock/bizstock-api/internal/application/dto"
	"github.com/bizstock/bizstock-api/internal/application/usecase"
	"github.com/bizstock/bizstock-api/internal/domain"
	"github.com/bizstock/bizstock-api/internal/domain/entity"
)

// fakeProductRepo repositorio mínimo en memoria para los casos de uso de catálogo.
type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.Active {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok || !stored.Active {
		return &domain.ProductNotFoundError{ProductID: p.ID}
	}
	cp := *p
	cp.Quantity = stored.Quantity // quantity no se toca vía catálogo
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Deactivate(ctx context.Context, id int64) error {
	p, ok := r.products[id]
	if !ok || !p.Active {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	p.Active = false
	return nil
}

func (r *fakeProductRepo) GetQuantity(ctx context.Context, id int64) (int64, error) {
	panic("no usado en catálogo")
}

func (r *fakeProductRepo) GetQuantityForUpdate(ctx context.Context, id int64) (int64, error) {
	panic("no usado en catálogo")
}

func (r *fakeProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) (int64, error) {
	panic("no usado en catálogo")
}

func (r *fakeProductRepo) ListCritical(ctx context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListLow(ctx context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Taladro 500W",
		Description:   "Taladro percutor",
		Price:         decimal.NewFromInt(250000),
		Quantity:      12,
		ReorderLevel:  5,
		CriticalLevel: 2,
		CategoryID:    1,
		BrandID:       1,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	resp, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Taladro 500W", resp.Name)
	assert.Equal(t, int64(12), resp.Quantity)
}

func TestProductCreate_NombreVacioInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	in := validCreate()
	in.Name = ""

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativoInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	in := validCreate()
	in.Price = decimal.NewFromInt(-1)

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Invariante de umbrales: critical_level <= reorder_level.
func TestProductCreate_CriticoMayorQueReordenInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	in := validCreate()
	in.CriticalLevel = 9
	in.ReorderLevel = 5

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoRompeInvarianteDeUmbrales(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	bad := int64(99)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{CriticalLevel: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	name := "Taladro 650W"
	price := decimal.NewFromInt(280000)
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Taladro 650W", resp.Name)
	assert.True(t, price.Equal(resp.Price))
	assert.Equal(t, created.Description, resp.Description, "los campos no enviados no cambian")
}

func TestProductUpdate_InexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "x"
	resp, err := uc.Update(context.Background(), 404, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// La baja es lógica: el producto deja de listarse pero no desaparece del repo.
func TestProductDeactivate_BajaLogica(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), created.ID))

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "un producto inactivo no se expone")

	_, ok := repo.products[created.ID]
	assert.True(t, ok, "la fila sigue existiendo (nunca se borra físicamente)")

	err = uc.Deactivate(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "doble baja falla con NotFound")
}
