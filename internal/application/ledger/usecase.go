package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockLedgerUseCase registra recepciones y salidas de mercancía manteniendo
// products.current_stock consistente con el libro: cada operación corre dentro
// de una transacción (TxRunner) y las salidas validan bajo bloqueo de fila
// (SELECT FOR UPDATE), de modo que dos salidas concurrentes sobre el mismo
// producto nunca puedan sobregirar la existencia.
type StockLedgerUseCase struct {
	txRunner       TxRunner
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(
	txRunner TxRunner,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:       txRunner,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// ReceiptInput entrada para registrar una recepción (IN).
type ReceiptInput struct {
	ProductID string
	Quantity  decimal.Decimal
	OfficerID string
	Remark    string
}

// IssueInput entrada para registrar una salida (OUT).
type IssueInput struct {
	ProductID    string
	Quantity     decimal.Decimal
	RequesterID  string
	OfficerID    string
	DepartmentID string // opcional
}

// BulkIssueLine una línea de salida masiva.
type BulkIssueLine struct {
	ProductID string
	Quantity  decimal.Decimal
}

// BulkIssueInput entrada para registrar una salida masiva (todo o nada).
type BulkIssueInput struct {
	Items        []BulkIssueLine
	RequesterID  string
	OfficerID    string
	DepartmentID string // opcional
}

// RegisterReceipt valida y persiste una recepción: inserta la fila StockIn y
// suma la cantidad a current_stock en la misma transacción. Las recepciones
// son conmutativas, así que el incremento es un UPDATE atómico sin bloqueo previo.
func (uc *StockLedgerUseCase) RegisterReceipt(ctx context.Context, in ReceiptInput) error {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.requireEmployee(in.OfficerID); err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
		productRepo repository.ProductRepository,
	) error {
		// AddStock devuelve ErrNotFound si el producto no existe
		if err := productRepo.AddStock(in.ProductID, in.Quantity); err != nil {
			return err
		}
		remark := in.Remark
		if remark == "" {
			remark = "-"
		}
		return stockInRepo.Create(&entity.StockIn{
			ProductID: in.ProductID,
			OfficerID: in.OfficerID,
			Quantity:  in.Quantity,
			StockDate: now,
			StockTime: now,
			Remark:    remark,
			CreatedAt: now,
		})
	})
}

// RegisterIssue valida y persiste una salida. Bloquea la fila del producto,
// verifica existencia suficiente y decrementa; si la cantidad pedida excede la
// disponible devuelve *domain.InsufficientStockError sin mutar nada.
func (uc *StockLedgerUseCase) RegisterIssue(ctx context.Context, in IssueInput) error {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.RequesterID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.requireEmployee(in.RequesterID); err != nil {
		return err
	}
	if err := uc.requireEmployee(in.OfficerID); err != nil {
		return err
	}
	if err := uc.requireDepartment(in.DepartmentID); err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.issueOne(stockOutRepo, productRepo, in.ProductID, in.Quantity, in, now)
	})
}

// RegisterBulkIssue aplica varias salidas como una sola unidad de trabajo:
// si cualquier línea dejaría el stock en negativo (o cualquier escritura
// falla), ninguna línea queda persistida.
//
// Líneas duplicadas del mismo producto se suman antes de validar, para que el
// total del lote no pueda sobregirar la existencia validando por partes.
// Los productos se bloquean en orden estable (IDs ordenados) para que dos
// lotes concurrentes no se crucen en orden de bloqueo.
func (uc *StockLedgerUseCase) RegisterBulkIssue(ctx context.Context, in BulkIssueInput) error {
	if len(in.Items) == 0 || in.RequesterID == "" {
		return domain.ErrInvalidInput
	}
	totals := make(map[string]decimal.Decimal, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		totals[item.ProductID] = totals[item.ProductID].Add(item.Quantity)
	}
	if err := uc.requireEmployee(in.RequesterID); err != nil {
		return err
	}
	if err := uc.requireEmployee(in.OfficerID); err != nil {
		return err
	}
	if err := uc.requireDepartment(in.DepartmentID); err != nil {
		return err
	}

	productIDs := make([]string, 0, len(totals))
	for id := range totals {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	issue := IssueInput{
		RequesterID:  in.RequesterID,
		OfficerID:    in.OfficerID,
		DepartmentID: in.DepartmentID,
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, productID := range productIDs {
			if err := uc.issueOne(stockOutRepo, productRepo, productID, totals[productID], issue, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// issueOne bloquea la fila del producto, valida la existencia, decrementa y
// persiste la fila StockOut. Debe llamarse dentro de la transacción.
func (uc *StockLedgerUseCase) issueOne(
	stockOutRepo repository.StockOutRepository,
	productRepo repository.ProductRepository,
	productID string,
	qty decimal.Decimal,
	in IssueInput,
	now time.Time,
) error {
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CurrentStock.LessThan(qty) {
		return &domain.InsufficientStockError{
			ProductID: productID,
			Requested: qty,
			Available: product.CurrentStock,
		}
	}
	if err := productRepo.SetStock(productID, product.CurrentStock.Sub(qty)); err != nil {
		return err
	}
	var departmentID *string
	if in.DepartmentID != "" {
		departmentID = &in.DepartmentID
	}
	return stockOutRepo.Create(&entity.StockOut{
		ProductID:      productID,
		RequesterID:    in.RequesterID,
		OfficerID:      in.OfficerID,
		DepartmentID:   departmentID,
		Quantity:       qty,
		WithdrawalDate: now,
		WithdrawalTime: now,
		Status:         entity.StockOutStatusApproved,
		CreatedAt:      now,
	})
}

// requireEmployee verifica que el empleado exista. ID vacío = inválido.
func (uc *StockLedgerUseCase) requireEmployee(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return nil
}

// requireDepartment verifica el departamento si fue indicado (es opcional).
func (uc *StockLedgerUseCase) requireDepartment(id string) error {
	if id == "" {
		return nil
	}
	department, err := uc.departmentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrNotFound
	}
	return nil
}
