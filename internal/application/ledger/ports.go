package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de
// movimientos: la fila del movimiento y la actualización de stock se
// confirman o se revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		productRepo repository.ProductRepository,
	) error) error
}
