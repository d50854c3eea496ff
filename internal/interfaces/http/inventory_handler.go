package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Manufactura-api/internal/application/dto"
	"github.com/jhoicas/Manufactura-api/internal/application/inventory"
)

// InventoryHandler maneja la consulta de existencias (protegido).
type InventoryHandler struct {
	query *inventory.BalanceQuery
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(query *inventory.BalanceQuery) *InventoryHandler {
	return &InventoryHandler{query: query}
}

// ListBalances godoc
// @Summary      Listar existencias por lote
// @Description  Devuelve las filas del libro de existencias de la empresa,
//
//	filtrables por artículo, bodega o planta.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por artículo"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        site_id       query  string  false  "Filtrar por planta"
// @Success      200  {object}  dto.ListInventoryBalancesResponse
// @Router       /api/inventory-balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.query.ListBalances(c.Context(), companyID, inventory.BalanceFilter{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
		SiteID:      c.Query("site_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
