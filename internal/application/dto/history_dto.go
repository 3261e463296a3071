package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntryDTO una entrada del feed cronológico unificado de movimientos.
// El ID es sintético: "IN-" u "OUT-" más el id de la fila origen.
type HistoryEntryDTO struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"` // IN | OUT
	Name       string          `json:"name"` // nombre del producto (o marcador si fue eliminado)
	Qty        decimal.Decimal `json:"qty"`
	Unit       string          `json:"unit"`
	Officer    string          `json:"officer"`
	Requester  string          `json:"requester,omitempty"`  // solo OUT
	Department string          `json:"department"`           // OUT: departamento; IN: etiqueta fija de recepción
	Timestamp  time.Time       `json:"timestamp"`            // fecha + hora compuestas
}
