package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductListRow producto con los nombres de categoría y unidad ya resueltos
// (JOIN en la DB; evita N+1 en listados).
type ProductListRow struct {
	Product      entity.Product
	CategoryName string
	UnitName     string
}

// ProductRepository puerto de persistencia de productos.
// Las mutaciones de stock solo deben ocurrir dentro de la transacción del
// libro de movimientos (vía TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)

	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// Devuelve nil si no existe. Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)

	// SetStock fija la existencia del producto (resultado de un movimiento ya validado).
	SetStock(productID string, stock decimal.Decimal) error

	// AddStock incrementa la existencia de forma atómica (recepciones, conmutativas).
	// Devuelve ErrNotFound si el producto no existe.
	AddStock(productID string, qty decimal.Decimal) error

	// Search lista productos con categoría y unidad, filtrando por nombre de
	// producto o de categoría (ILIKE), ordenados por nombre. query vacío = todos.
	Search(query string) ([]ProductListRow, error)
}
