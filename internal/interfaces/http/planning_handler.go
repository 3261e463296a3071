package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/planning"
)

// PlanningHandler maneja el reporte de planeación de compras (protegido,
// solo roles con vista gerencial).
type PlanningHandler struct {
	uc *planning.PlanningUseCase
}

// NewPlanningHandler construye el handler de planeación.
func NewPlanningHandler(uc *planning.PlanningUseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de planeación de compras
// @Description  Catálogo completo con estado de reorden y pedido sugerido.
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "texto de búsqueda"
// @Success      200  {object}  dto.PlanningReportDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/planning/report [get]
func (h *PlanningHandler) Report(c *fiber.Ctx) error {
	report, err := h.uc.Report(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// ReportPDF godoc
// @Summary      Reporte de planeación en PDF
// @Tags         planning
// @Security     Bearer
// @Produce      application/pdf
// @Param        q  query  string  false  "texto de búsqueda"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/planning/report/pdf [get]
func (h *PlanningHandler) ReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ReportPDF(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "planeacion-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
