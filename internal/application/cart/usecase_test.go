package cart_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	cartdomain "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store  *memory.Store
	uc     *cart.CartUseCase
	pdf    *fakePDF
	userID string
	a, b   string // productos con precio 100 y 250
}

type fakePDF struct {
	owner   *entity.User
	summary cartdomain.Summary
}

func (f *fakePDF) GenerateCartPDF(_ context.Context, owner *entity.User, s cartdomain.Summary, _ time.Time) ([]byte, error) {
	f.owner = owner
	f.summary = s
	return []byte("%PDF-fake"), nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	c := &entity.Category{ID: uuid.NewString(), Slug: "ropa", Title: "Ropa"}
	require.NoError(t, s.Categories().Create(ctx, c))
	sub := &entity.SubCategory{ID: uuid.NewString(), CategoryID: c.ID, Slug: "camisas", Name: "Camisas"}
	require.NoError(t, s.SubCategories().Create(ctx, sub))
	a := &entity.Product{ID: uuid.NewString(), SubCategoryID: sub.ID, Slug: "a", Name: "A", Price: 100}
	b := &entity.Product{ID: uuid.NewString(), SubCategoryID: sub.ID, Slug: "b", Name: "B", Price: 250}
	require.NoError(t, s.Products().Create(ctx, a))
	require.NoError(t, s.Products().Create(ctx, b))
	u := &entity.User{ID: uuid.NewString(), Email: "cliente@tienda.com", Role: entity.RoleCustomer, Status: entity.UserStatusActive}
	require.NoError(t, s.Users().Create(ctx, u))

	pdf := &fakePDF{}
	uc := cart.NewCartUseCase(s.Cart(), s.Products(), s.Users(), s, pdf)
	return &fixture{store: s, uc: uc, pdf: pdf, userID: u.ID, a: a.ID, b: b.ID}
}

func items(pairs ...any) []dto.CartItemRequest {
	out := make([]dto.CartItemRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, dto.CartItemRequest{Product: pairs[i].(string), Amount: pairs[i+1].(int)})
	}
	return out
}

func requireFields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

// ──────────────────────────────────────────────────────────────────────────────
// Replace
// ──────────────────────────────────────────────────────────────────────────────

func TestReplace_EjemploDosProductos(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Replace(context.Background(), f.userID, items(f.a, 2, f.b, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(450), resp.Total)
	assert.Equal(t, []dto.CartItemResponse{
		{ProductID: f.a, Name: "A", Price: 100, Amount: 2},
		{ProductID: f.b, Name: "B", Price: 250, Amount: 1},
	}, resp.Items)
}

func TestReplace_ListDevuelveExactamenteLoEnviado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	replaced, err := f.uc.Replace(ctx, f.userID, items(f.b, 3))
	require.NoError(t, err)

	listed, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, replaced, listed, "reemplazo y lectura deben producir la misma vista")
}

func TestReplace_DosLlamadasDejanSoloLaSegunda(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 1, f.b, 1))
	require.NoError(t, err)
	_, err = f.uc.Replace(ctx, f.userID, items(f.b, 5))
	require.NoError(t, err)

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, int64(1250), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, f.b, got.Items[0].ProductID)
}

func TestReplace_ProductoRepetidoSeRechazaSinTocarCarrito(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 4))
	require.NoError(t, err)

	_, err = f.uc.Replace(ctx, f.userID, items(f.b, 1, f.b, 2))
	fields := requireFields(t, err)
	assert.Contains(t, fields, "products[1].product")

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, f.a, got.Items[0].ProductID)
	assert.Equal(t, 4, got.Items[0].Amount)
}

func TestReplace_PrimerEscritoConDuplicadoQuedaVacio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 1, f.a, 1))
	require.Error(t, err)

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Zero(t, got.Count)
	assert.Empty(t, got.Items)
}

func TestReplace_ErroresDeValidacionPorCampo(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Replace(context.Background(), f.userID, items(
		f.a, 0,
		uuid.NewString(), 1,
		"no-es-uuid", 1,
		"", -2,
	))
	fields := requireFields(t, err)

	assert.Contains(t, fields, "products[0].amount")
	assert.Contains(t, fields, "products[1].product")
	assert.Contains(t, fields, "products[2].product")
	assert.Contains(t, fields, "products[3].product")
	assert.Contains(t, fields, "products[3].amount")
	assert.NotContains(t, fields, "products[0].product")
}

func TestReplace_ListaVaciaVaciaElCarrito(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 1))
	require.NoError(t, err)

	resp, err := f.uc.Replace(ctx, f.userID, []dto.CartItemRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Items)
}

func TestReplace_SinUsuario(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Replace(context.Background(), "", items(f.a, 1))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReplace_NoAfectaCarritoDeOtroUsuario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := &entity.User{ID: uuid.NewString(), Email: "otro@tienda.com"}
	require.NoError(t, f.store.Users().Create(ctx, other))

	_, err := f.uc.Replace(ctx, other.ID, items(f.b, 7))
	require.NoError(t, err)
	_, err = f.uc.Replace(ctx, f.userID, items(f.a, 1))
	require.NoError(t, err)

	got, err := f.uc.List(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 7, got.Items[0].Amount)
}

// conflictRunner simula que la escritura choca con el índice único (usuario, producto).
type conflictRunner struct{}

func (conflictRunner) RunCart(ctx context.Context, _ string, fn func(repository.CartRepository) error) error {
	return domain.ErrDuplicate
}

func TestReplace_ChoqueDeUnicidadEnEscrituraEsConflicto(t *testing.T) {
	f := newFixture(t)
	uc := cart.NewCartUseCase(f.store.Cart(), f.store.Products(), f.store.Users(), conflictRunner{}, nil)

	_, err := uc.Replace(context.Background(), f.userID, items(f.a, 1))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReplace_ConcurrentesDejanUnaDeLasEntradas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inputs := [][]dto.CartItemRequest{
		items(f.a, 1),
		items(f.b, 2),
		items(f.a, 3, f.b, 4),
		items(f.b, 5, f.a, 6),
	}

	for round := 0; round < 20; round++ {
		var wg sync.WaitGroup
		for _, in := range inputs {
			wg.Add(1)
			go func(in []dto.CartItemRequest) {
				defer wg.Done()
				_, err := f.uc.Replace(ctx, f.userID, in)
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrConflict)
				}
			}(in)
		}
		wg.Wait()

		got, err := f.uc.List(ctx, f.userID)
		require.NoError(t, err)
		pairs := make([]dto.CartItemRequest, 0, len(got.Items))
		for _, it := range got.Items {
			pairs = append(pairs, dto.CartItemRequest{Product: it.ProductID, Amount: it.Amount})
		}
		assert.Contains(t, inputs, pairs, "el carrito final debe ser exactamente una de las entradas")
	}
}

func TestReplace_CantidadEnElLimite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.uc.Replace(ctx, f.userID, items(f.a, dto.MaxCartAmount))
	require.NoError(t, err)
	assert.Equal(t, int64(100*dto.MaxCartAmount), res.Total)

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, dto.MaxCartAmount, got.Items[0].Amount)
}

func TestReplace_CantidadSobreElLimiteSeRechaza(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 2))
	require.NoError(t, err)

	for _, amount := range []int{dto.MaxCartAmount + 1, 2147483648, 4294967297} {
		_, err := f.uc.Replace(ctx, f.userID, items(f.b, 1, f.a, amount))
		fields := requireFields(t, err)
		assert.Contains(t, fields, "products[1].amount", "amount=%d", amount)
	}

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Amount, "el carrito anterior no se toca")
}

func TestReplace_TotalQueDesbordaSeRechaza(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.store.Products().GetByID(ctx, f.b)
	require.NoError(t, err)
	caro := &entity.Product{ID: uuid.NewString(), SubCategoryID: p.SubCategoryID, Slug: "caro", Name: "Caro", Price: math.MaxInt64 / 2}
	require.NoError(t, f.store.Products().Create(ctx, caro))

	_, err = f.uc.Replace(ctx, f.userID, items(caro.ID, 3))
	fields := requireFields(t, err)
	assert.Contains(t, fields, "products")

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clear / SummaryPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestClear_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Clear(ctx, f.userID), "vaciar un carrito vacío no es error")
	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 1))
	require.NoError(t, err)
	require.NoError(t, f.uc.Clear(ctx, f.userID))
	require.NoError(t, f.uc.Clear(ctx, f.userID))

	got, err := f.uc.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Zero(t, got.Count)
}

func TestSummaryPDF_UsaVistaAgregada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Replace(ctx, f.userID, items(f.a, 2, f.b, 1))
	require.NoError(t, err)

	data, filename, err := f.uc.SummaryPDF(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.Regexp(t, `^carrito-\d{8}-\d{6}\.pdf$`, filename)
	require.NotNil(t, f.pdf.owner)
	assert.Equal(t, "cliente@tienda.com", f.pdf.owner.Email)
	assert.Equal(t, int64(450), f.pdf.summary.Total)
}

func TestSummaryPDF_UsuarioInexistente(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.SummaryPDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
