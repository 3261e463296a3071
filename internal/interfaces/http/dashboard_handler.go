package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// DashboardHandler maneja los agregados del dashboard y el análisis de rotación
// (protegido, solo roles con vista gerencial).
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	movementUC  *analytics.MovementUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, movementUC *analytics.MovementUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, movementUC: movementUC}
}

// Stats godoc
// @Summary      Estadísticas del dashboard
// @Description  Conteos, valor total del inventario, serie diaria de entradas/
//	salidas y top de productos por existencia.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "días de la serie (default 7)"
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	stats, err := h.dashboardUC.GetStats(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// Movement godoc
// @Summary      Análisis de rotación
// @Description  Clasifica el catálogo en productos de alta rotación (más salidas
//	en la ventana) y stock muerto (con existencia pero sin salidas).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int  false  "ventana de análisis en días (default 30)"
// @Success      200  {object}  dto.MovementStatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/movement [get]
func (h *DashboardHandler) Movement(c *fiber.Ctx) error {
	windowDays, _ := strconv.Atoi(c.Query("window_days"))
	stats, err := h.movementUC.GetMovementStats(c.Context(), windowDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
