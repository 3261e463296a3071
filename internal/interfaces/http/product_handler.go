package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// ProductHandler maneja las consultas del catálogo de productos (protegido).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar/buscar productos
// @Description  Lista el catálogo con categoría, unidad y estado de inventario.
//	q filtra por nombre de producto o de categoría (sin distinguir mayúsculas).
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "texto de búsqueda"
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// Summary godoc
// @Summary      Resumen del catálogo
// @Description  Total de productos y cuántos están en o bajo su punto de reorden.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/summary [get]
func (h *ProductHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.uc.SummaryStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
