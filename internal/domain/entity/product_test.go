package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name          string
		stock, safety int64
		want          string
	}{
		{"agotado", 0, 5, entity.StockStatusOut},
		{"en el punto de reorden", 5, 5, entity.StockStatusLow},
		{"bajo el punto de reorden", 3, 5, entity.StockStatusLow},
		{"normal", 6, 5, entity.StockStatusNormal},
		{"sin punto de reorden definido", 1, 0, entity.StockStatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{
				CurrentStock: decimal.NewFromInt(tc.stock),
				SafetyStock:  decimal.NewFromInt(tc.safety),
			}
			assert.Equal(t, tc.want, p.StockStatus())
		})
	}
}
