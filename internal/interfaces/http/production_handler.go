package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/application/production"
)

// ProductionHandler maneja los reportes de producción y el precheck de materiales (protegido).
type ProductionHandler struct {
	reportUC    *production.ReportUseCase
	precheckUC  *production.PrecheckUseCase
	reportQuery *production.ReportQuery
}

// NewProductionHandler construye el handler.
func NewProductionHandler(reportUC *production.ReportUseCase, precheckUC *production.PrecheckUseCase, reportQuery *production.ReportQuery) *ProductionHandler {
	return &ProductionHandler{reportUC: reportUC, precheckUC: precheckUC, reportQuery: reportQuery}
}

// PostReport godoc
// @Summary      Reportar producción (backflush)
// @Description  Registra la producción de una orden released: crea el lote de
//
//	producto terminado y consume los componentes por FIFO según la
//	BOM, todo en una sola transacción.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionReportRequest  true  "work_order_id, qty_produced"
// @Success      201   {object}  dto.ProductionReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production-reports [post]
func (h *ProductionHandler) PostReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateProductionReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "cuerpo inválido"})
	}
	resp, err := h.reportUC.PostProductionReport(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetReport godoc
// @Summary      Consultar un reporte de producción
// @Description  Devuelve la trazabilidad completa: lote de producto terminado y
//
//	consumos por componente con su desglose por lote.
//
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del reporte de producción"
// @Success      200  {object}  dto.ProductionReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-reports/{id} [get]
func (h *ProductionHandler) GetReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.reportQuery.GetProductionReport(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MaterialPrecheck godoc
// @Summary      Precheck de materiales de una orden
// @Description  Calcula necesidad y disponibilidad por componente para una
//
//	cantidad a producir, sin consumir nada. Usa la misma fórmula y el
//	mismo orden FIFO que el backflush real.
//
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID de la orden de fabricación"
// @Param        qty_produced  query  string  true   "Cantidad a producir (decimal)"
// @Success      200  {object}  dto.MaterialPrecheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id}/material-precheck [get]
func (h *ProductionHandler) MaterialPrecheck(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	raw := c.Query("qty_produced")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "qty_produced es requerido"})
	}
	qty, err := decimal.NewFromString(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "qty_produced inválido"})
	}
	resp, err := h.precheckUC.PrecheckMaterials(c.Context(), companyID, c.Params("id"), qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
