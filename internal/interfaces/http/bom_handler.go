package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Manufactura-api/internal/application/bom"
	"github.com/jhoicas/Manufactura-api/internal/application/dto"
)

// BOMHandler maneja las peticiones HTTP de listas de materiales (protegido).
type BOMHandler struct {
	uc *bom.UseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *bom.UseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// Save godoc
// @Summary      Guardar una BOM (nueva versión)
// @Description  Crea siempre una versión nueva (version_no = max+1); nunca
//
//	edita versiones existentes.
//
// @Tags         boms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveBOMRequest  true  "parent_item_id y líneas de componentes"
// @Success      201   {object}  dto.SaveBOMResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/boms [post]
func (h *BOMHandler) Save(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SaveBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Save(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Consultar una BOM con todas sus versiones
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del header de BOM"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boms/{id} [get]
func (h *BOMHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar BOMs de la empresa
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (por defecto 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.BOMResponse
// @Router       /api/boms [get]
func (h *BOMHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
