package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// DirectoryHandler maneja los catálogos de referencia que alimentan los
// formularios: empleados, oficiales de bodega, departamentos, categorías y
// unidades (protegido).
type DirectoryHandler struct {
	uc *catalog.CatalogUseCase
}

// NewDirectoryHandler construye el handler de catálogos de referencia.
func NewDirectoryHandler(uc *catalog.CatalogUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// ListEmployees godoc
// @Summary      Listar empleados
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *DirectoryHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toEmployeeResponses(employees))
}

// ListOfficers godoc
// @Summary      Listar oficiales de bodega
// @Description  Empleados con rol que puede registrar recepciones y salidas.
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/officers [get]
func (h *DirectoryHandler) ListOfficers(c *fiber.Ctx) error {
	officers, err := h.uc.ListOfficers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toEmployeeResponses(officers))
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/departments [get]
func (h *DirectoryHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.uc.ListDepartments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	result := make([]fiber.Map, 0, len(departments))
	for _, d := range departments {
		result = append(result, fiber.Map{"id": d.ID, "name": d.Name})
	}
	return c.JSON(result)
}

// ListCategories godoc
// @Summary      Listar categorías de producto
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *DirectoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	result := make([]fiber.Map, 0, len(categories))
	for _, cat := range categories {
		result = append(result, fiber.Map{"id": cat.ID, "name": cat.Name})
	}
	return c.JSON(result)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/units [get]
func (h *DirectoryHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.uc.ListUnits(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	result := make([]fiber.Map, 0, len(units))
	for _, u := range units {
		result = append(result, fiber.Map{"id": u.ID, "name": u.Name})
	}
	return c.JSON(result)
}

func toEmployeeResponses(employees []*entity.Employee) []dto.EmployeeResponse {
	result := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, *auth.ToEmployeeResponse(e))
	}
	return result
}
