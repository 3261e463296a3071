package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/history"
)

// HistoryHandler maneja el feed unificado de movimientos (protegido).
type HistoryHandler struct {
	uc *history.HistoryUseCase
}

// NewHistoryHandler construye el handler de historial.
func NewHistoryHandler(uc *history.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Feed godoc
// @Summary      Historial unificado de movimientos
// @Description  Entradas y salidas recientes mezcladas en un solo feed,
//	ordenadas de más nueva a más vieja. Los ids llevan prefijo IN-/OUT-.
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.HistoryEntryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) Feed(c *fiber.Ctx) error {
	entries, err := h.uc.Feed(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
