// Package history construye el feed cronológico unificado de movimientos:
// recepciones y salidas mezcladas en una sola línea de tiempo descendente.
package history

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Etiquetas de presentación del feed. El esquema guarda la fecha y la hora del
// movimiento en columnas separadas; el timestamp efectivo se compone con la
// fecha de una y la hora/minuto de la otra.
const (
	feedLimit        = 50
	receiptDeptLabel = "Recepción de mercancía" // las entradas no tienen departamento
	deletedProduct   = "(eliminado)"
	defaultUnit      = "unidad"
)

// HistoryUseCase proyección de solo lectura sobre ambos libros.
type HistoryUseCase struct {
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(stockInRepo repository.StockInRepository, stockOutRepo repository.StockOutRepository) *HistoryUseCase {
	return &HistoryUseCase{stockInRepo: stockInRepo, stockOutRepo: stockOutRepo}
}

// Feed devuelve las últimas recepciones y salidas fusionadas y ordenadas por
// timestamp compuesto descendente. Cada entrada lleva un id sintético
// "IN-<id>" u "OUT-<id>" que mapea de vuelta a la fila origen.
func (uc *HistoryUseCase) Feed(_ context.Context) ([]dto.HistoryEntryDTO, error) {
	ins, err := uc.stockInRepo.ListRecent(feedLimit)
	if err != nil {
		return nil, err
	}
	outs, err := uc.stockOutRepo.ListRecent(feedLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.HistoryEntryDTO, 0, len(ins)+len(outs))
	for _, row := range ins {
		entries = append(entries, dto.HistoryEntryDTO{
			ID:         "IN-" + row.ID,
			Type:       "IN",
			Name:       orDefault(row.ProductName, deletedProduct),
			Qty:        row.Quantity,
			Unit:       orDefault(row.UnitName, defaultUnit),
			Officer:    personLabel(row.OfficerNickname, row.OfficerFullName),
			Department: receiptDeptLabel,
			Timestamp:  composeTimestamp(row.StockDate, row.StockTime),
		})
	}
	for _, row := range outs {
		entries = append(entries, dto.HistoryEntryDTO{
			ID:         "OUT-" + row.ID,
			Type:       "OUT",
			Name:       orDefault(row.ProductName, deletedProduct),
			Qty:        row.Quantity,
			Unit:       orDefault(row.UnitName, defaultUnit),
			Officer:    personLabel(row.OfficerNickname, row.OfficerFullName),
			Requester:  personLabel(row.RequesterNickname, row.RequesterFullName),
			Department: orDefault(row.DepartmentName, "-"),
			Timestamp:  composeTimestamp(row.WithdrawalDate, row.WithdrawalTime),
		})
	}

	// Orden estable: a igual timestamp, conserva IN antes que OUT según inserción
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// composeTimestamp toma la fecha de `date` y la hora/minuto de `clock`.
// Si la hora viene en cero (fila antigua sin columna de hora), queda medianoche.
func composeTimestamp(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// personLabel prefiere el apodo, luego el nombre completo, luego "-".
func personLabel(nickname, fullName string) string {
	if nickname != "" {
		return nickname
	}
	if fullName != "" {
		return fullName
	}
	return "-"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
