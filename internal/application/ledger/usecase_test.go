package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) SetStock(productID string, stock decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	return nil
}

func (r *fakeProductRepo) AddStock(productID string, qty decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = p.CurrentStock.Add(qty)
	return nil
}

func (r *fakeProductRepo) Search(string) ([]repository.ProductListRow, error) {
	var rows []repository.ProductListRow
	for _, p := range r.products {
		rows = append(rows, repository.ProductListRow{Product: *p})
	}
	return rows, nil
}

type fakeStockInRepo struct {
	rows []*entity.StockIn
}

func (r *fakeStockInRepo) Create(in *entity.StockIn) error {
	r.rows = append(r.rows, in)
	return nil
}

func (r *fakeStockInRepo) ListRecent(int) ([]repository.StockInHistoryRow, error) {
	return nil, nil
}

type fakeStockOutRepo struct {
	rows []*entity.StockOut
}

func (r *fakeStockOutRepo) Create(out *entity.StockOut) error {
	r.rows = append(r.rows, out)
	return nil
}

func (r *fakeStockOutRepo) ListRecent(int) ([]repository.StockOutHistoryRow, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}
func (r *fakeEmployeeRepo) GetByUsername(string) (*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) ListAll() ([]*entity.Employee, error)           { return nil, nil }
func (r *fakeEmployeeRepo) ListByRoles([]string) ([]*entity.Employee, error) {
	return nil, nil
}

type fakeDepartmentRepo struct {
	departments map[string]*entity.Department
}

func (r *fakeDepartmentRepo) Create(d *entity.Department) error { r.departments[d.ID] = d; return nil }
func (r *fakeDepartmentRepo) GetByID(id string) (*entity.Department, error) {
	return r.departments[id], nil
}
func (r *fakeDepartmentRepo) ListAll() ([]*entity.Department, error) { return nil, nil }

// fakeTxRunner emula la semántica todo-o-nada: toma snapshot del estado y lo
// restaura si el callback falla.
type fakeTxRunner struct {
	products *fakeProductRepo
	ins      *fakeStockInRepo
	outs     *fakeStockOutRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	productRepo repository.ProductRepository,
) error) error {
	stockSnapshot := make(map[string]decimal.Decimal, len(r.products.products))
	for id, p := range r.products.products {
		stockSnapshot[id] = p.CurrentStock
	}
	insLen, outsLen := len(r.ins.rows), len(r.outs.rows)

	if err := fn(r.ins, r.outs, r.products); err != nil {
		for id, stock := range stockSnapshot {
			r.products.products[id].CurrentStock = stock
		}
		r.ins.rows = r.ins.rows[:insLen]
		r.outs.rows = r.outs.rows[:outsLen]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Arnés
// ──────────────────────────────────────────────────────────────────────────────

type harness struct {
	uc       *ledger.StockLedgerUseCase
	products *fakeProductRepo
	ins      *fakeStockInRepo
	outs     *fakeStockOutRepo
}

const (
	prodTornillos     = "prod-tornillos"
	prodPintura       = "prod-pintura"
	empOficial        = "emp-oficial"
	empSolicitante    = "emp-solicitante"
	deptMantenimiento = "dept-mantenimiento"
)

func newHarness(t *testing.T) *harness {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		prodTornillos: {ID: prodTornillos, Name: "Tornillos", CurrentStock: decimal.NewFromInt(10)},
		prodPintura:   {ID: prodPintura, Name: "Pintura", CurrentStock: decimal.NewFromInt(3)},
	}}
	employees := &fakeEmployeeRepo{employees: map[string]*entity.Employee{
		empOficial:     {ID: empOficial, Role: entity.RoleStoreOfficer},
		empSolicitante: {ID: empSolicitante, Role: entity.RoleViewer},
	}}
	departments := &fakeDepartmentRepo{departments: map[string]*entity.Department{
		deptMantenimiento: {ID: deptMantenimiento, Name: "Mantenimiento"},
	}}
	ins := &fakeStockInRepo{}
	outs := &fakeStockOutRepo{}
	runner := &fakeTxRunner{products: products, ins: ins, outs: outs}
	return &harness{
		uc:       ledger.NewStockLedgerUseCase(runner, employees, departments),
		products: products,
		ins:      ins,
		outs:     outs,
	}
}

func (h *harness) stock(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	p, err := h.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.CurrentStock
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterReceipt_IncrementaStockYRegistraFila(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterReceipt(context.Background(), ledger.ReceiptInput{
		ProductID: prodTornillos,
		Quantity:  decimal.NewFromInt(5),
		OfficerID: empOficial,
	})
	require.NoError(t, err)

	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(15)),
		"la existencia debe pasar de 10 a 15")
	require.Len(t, h.ins.rows, 1)
	assert.Equal(t, "-", h.ins.rows[0].Remark, "remark vacío debe guardarse como '-'")
	assert.Equal(t, empOficial, h.ins.rows[0].OfficerID)
}

func TestRegisterReceipt_ProductoInexistente(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterReceipt(context.Background(), ledger.ReceiptInput{
		ProductID: "prod-fantasma",
		Quantity:  decimal.NewFromInt(5),
		OfficerID: empOficial,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, h.ins.rows, "no debe quedar fila de recepción")
}

func TestRegisterReceipt_CantidadInvalida(t *testing.T) {
	h := newHarness(t)
	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		err := h.uc.RegisterReceipt(context.Background(), ledger.ReceiptInput{
			ProductID: prodTornillos,
			Quantity:  qty,
			OfficerID: empOficial,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(10)), "la existencia no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterIssue_DescuentaHastaCero(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterIssue(context.Background(), ledger.IssueInput{
		ProductID:   prodTornillos,
		Quantity:    decimal.NewFromInt(10),
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})
	require.NoError(t, err)

	assert.True(t, h.stock(t, prodTornillos).IsZero(), "retirar toda la existencia debe dejarla en 0")
	require.Len(t, h.outs.rows, 1)
	assert.Equal(t, entity.StockOutStatusApproved, h.outs.rows[0].Status)
	assert.Nil(t, h.outs.rows[0].DepartmentID, "sin departamento indicado el campo queda nulo")
}

func TestRegisterIssue_RechazaSobregiroConDisponible(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterIssue(context.Background(), ledger.IssueInput{
		ProductID:   prodTornillos,
		Quantity:    decimal.NewFromInt(20),
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient), "debe devolver InsufficientStockError")
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(10)),
		"el error debe llevar la cantidad disponible (10)")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "debe matchear el sentinel con errors.Is")

	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(10)), "la existencia no debe mutar")
	assert.Empty(t, h.outs.rows, "no debe quedar fila de salida")
}

func TestRegisterIssue_SecuenciaDelEjemplo(t *testing.T) {
	// Recepción de 5 sobre 10, rechazo de 20, retiro exacto de 15: termina en 0.
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.uc.RegisterReceipt(ctx, ledger.ReceiptInput{
		ProductID: prodTornillos, Quantity: decimal.NewFromInt(5), OfficerID: empOficial,
	}))

	err := h.uc.RegisterIssue(ctx, ledger.IssueInput{
		ProductID: prodTornillos, Quantity: decimal.NewFromInt(20),
		RequesterID: empSolicitante, OfficerID: empOficial,
	})
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(15)))

	require.NoError(t, h.uc.RegisterIssue(ctx, ledger.IssueInput{
		ProductID: prodTornillos, Quantity: decimal.NewFromInt(15),
		RequesterID: empSolicitante, OfficerID: empOficial,
	}))
	assert.True(t, h.stock(t, prodTornillos).IsZero())
}

func TestRegisterIssue_DepartamentoInexistente(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterIssue(context.Background(), ledger.IssueInput{
		ProductID:    prodTornillos,
		Quantity:     decimal.NewFromInt(1),
		RequesterID:  empSolicitante,
		OfficerID:    empOficial,
		DepartmentID: "dept-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterIssue_SolicitanteRequerido(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterIssue(context.Background(), ledger.IssueInput{
		ProductID: prodTornillos,
		Quantity:  decimal.NewFromInt(1),
		OfficerID: empOficial,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salida masiva (todo o nada)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterBulkIssue_AplicaTodasLasLineas(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterBulkIssue(context.Background(), ledger.BulkIssueInput{
		Items: []ledger.BulkIssueLine{
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(4)},
			{ProductID: prodPintura, Quantity: decimal.NewFromInt(2)},
		},
		RequesterID:  empSolicitante,
		OfficerID:    empOficial,
		DepartmentID: deptMantenimiento,
	})
	require.NoError(t, err)

	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(6)))
	assert.True(t, h.stock(t, prodPintura).Equal(decimal.NewFromInt(1)))
	assert.Len(t, h.outs.rows, 2)
}

func TestRegisterBulkIssue_TodoONada(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterBulkIssue(context.Background(), ledger.BulkIssueInput{
		Items: []ledger.BulkIssueLine{
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(4)},
			{ProductID: prodPintura, Quantity: decimal.NewFromInt(99)}, // sobregira
		},
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ninguna línea debe quedar aplicada, ni siquiera la válida.
	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(10)))
	assert.True(t, h.stock(t, prodPintura).Equal(decimal.NewFromInt(3)))
	assert.Empty(t, h.outs.rows)
}

func TestRegisterBulkIssue_SumaLineasDuplicadas(t *testing.T) {
	// Dos líneas de 6 sobre existencia 10: por separado pasarían, sumadas no.
	h := newHarness(t)
	err := h.uc.RegisterBulkIssue(context.Background(), ledger.BulkIssueInput{
		Items: []ledger.BulkIssueLine{
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(6)},
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(6)},
		},
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient), "las líneas duplicadas deben validarse sumadas")
	assert.True(t, insufficient.Requested.Equal(decimal.NewFromInt(12)))
	assert.True(t, h.stock(t, prodTornillos).Equal(decimal.NewFromInt(10)))
}

func TestRegisterBulkIssue_DuplicadasValidasQuedanEnUnaFila(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterBulkIssue(context.Background(), ledger.BulkIssueInput{
		Items: []ledger.BulkIssueLine{
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(4)},
			{ProductID: prodTornillos, Quantity: decimal.NewFromInt(6)},
		},
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})
	require.NoError(t, err)

	assert.True(t, h.stock(t, prodTornillos).IsZero())
	require.Len(t, h.outs.rows, 1, "las líneas del mismo producto se agregan en una sola fila")
	assert.True(t, h.outs.rows[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestRegisterBulkIssue_SinLineas(t *testing.T) {
	h := newHarness(t)
	err := h.uc.RegisterBulkIssue(context.Background(), ledger.BulkIssueInput{
		RequesterID: empSolicitante,
		OfficerID:   empOficial,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
