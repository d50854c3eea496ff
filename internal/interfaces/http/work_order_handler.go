package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/application/workorder"
	"github.com/jhoicas/Manufactura-api/internal/domain/repository"
)

// WorkOrderHandler maneja las peticiones HTTP de órdenes de fabricación (protegido).
type WorkOrderHandler struct {
	uc *workorder.UseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *workorder.UseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de fabricación
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "site_id, item_id, planned_qty, uom_id, bom_version_id, primary_warehouse_id"
// @Success      201   {object}  dto.WorkOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Release godoc
// @Summary      Liberar una orden (draft -> released)
// @Description  Solo una orden released puede reportar producción.
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/release [post]
func (h *WorkOrderHandler) Release(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.Release(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Consultar una orden de fabricación
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar órdenes de fabricación
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "Filtrar por estado (draft, released, completed, cancelled)"
// @Param        site_id  query  string  false  "Filtrar por planta"
// @Param        item_id  query  string  false  "Filtrar por artículo"
// @Param        limit    query  int     false  "Máximo de filas (por defecto 100)"
// @Success      200  {object}  dto.ListWorkOrdersResponse
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := repository.WorkOrderFilter{
		Status: c.Query("status"),
		SiteID: c.Query("site_id"),
		ItemID: c.Query("item_id"),
		Limit:  c.QueryInt("limit"),
	}
	resp, err := h.uc.List(c.Context(), companyID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
