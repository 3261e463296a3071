package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// LedgerHandler maneja el registro de recepciones y salidas (protegido).
type LedgerHandler struct {
	uc *ledger.StockLedgerUseCase
}

// NewLedgerHandler construye el handler del libro de movimientos.
func NewLedgerHandler(uc *ledger.StockLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegisterReceipt godoc
// @Summary      Registrar recepción de mercancía (IN)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptRequest  true  "product_id, quantity; officer_id opcional (default: usuario del token)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger/receipts [post]
func (h *LedgerHandler) RegisterReceipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	officerID := in.OfficerID
	if officerID == "" {
		officerID = GetUserID(c)
	}
	err := h.uc.RegisterReceipt(c.Context(), ledger.ReceiptInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		OfficerID: officerID,
		Remark:    in.Remark,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "recepción registrada"})
}

// RegisterIssue godoc
// @Summary      Registrar salida de mercancía (OUT)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "product_id, quantity, requester_id; officer_id opcional; department_id opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/issues [post]
func (h *LedgerHandler) RegisterIssue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	officerID := in.OfficerID
	if officerID == "" {
		officerID = GetUserID(c)
	}
	err := h.uc.RegisterIssue(c.Context(), ledger.IssueInput{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		RequesterID:  in.RequesterID,
		OfficerID:    officerID,
		DepartmentID: in.DepartmentID,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salida registrada"})
}

// RegisterBulkIssue godoc
// @Summary      Registrar salida masiva (todo o nada)
// @Description  Aplica todas las líneas en una sola transacción; si alguna
//	falla la validación de existencias, ninguna se registra.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkIssueRequest  true  "items[], requester_id; officer_id opcional; department_id opcional"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/issues/bulk [post]
func (h *LedgerHandler) RegisterBulkIssue(c *fiber.Ctx) error {
	var in dto.BulkIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	officerID := in.OfficerID
	if officerID == "" {
		officerID = GetUserID(c)
	}
	items := make([]ledger.BulkIssueLine, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, ledger.BulkIssueLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	err := h.uc.RegisterBulkIssue(c.Context(), ledger.BulkIssueInput{
		Items:        items,
		RequesterID:  in.RequesterID,
		OfficerID:    officerID,
		DepartmentID: in.DepartmentID,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salida masiva registrada", "items": len(items)})
}

// ledgerError mapea errores de dominio del libro de movimientos a HTTP.
// InsufficientStockError incluye la cantidad disponible para que el cliente
// pueda reintentar con menos.
func ledgerError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   insufficient.Error(),
			Available: insufficient.Available.String(),
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, empleado o departamento no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
