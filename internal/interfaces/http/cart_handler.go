package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// CartHandler maneja el carrito del usuario autenticado.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Carrito del usuario actual
// @Tags         shoppingcart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/shoppingcart/ [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar el carrito completo
// @Description  Borra todas las líneas del usuario y crea las recibidas en una sola transacción.
// @Description  El campo user se ignora: manda el usuario del token.
// @Tags         shoppingcart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplaceCartRequest  true  "Productos y cantidades"
// @Success      201   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shoppingcart/ [post]
func (h *CartHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Replace(c.UserContext(), GetUserID(c), in.Products)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         shoppingcart
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/shoppingcart/clear_shopping_cart/ [post]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SummaryPDF godoc
// @Summary      Resumen del carrito en PDF
// @Tags         shoppingcart
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/shoppingcart/pdf/ [get]
func (h *CartHandler) SummaryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.SummaryPDF(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(data)
}
