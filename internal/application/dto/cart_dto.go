package dto

// MaxCartAmount cantidad máxima por línea del carrito (coincide con el tag lte de CartItemRequest.Amount).
const MaxCartAmount = 1000000

// CartItemRequest un par (producto, cantidad) del cuerpo de reemplazo del carrito.
type CartItemRequest struct {
	Product string `json:"product" validate:"required,uuid"`
	Amount  int    `json:"amount" validate:"gt=0,lte=1000000"`
}

// ReplaceCartRequest cuerpo de POST /shoppingcart. User se ignora: manda el usuario autenticado.
type ReplaceCartRequest struct {
	User     string            `json:"user"`
	Products []CartItemRequest `json:"products" validate:"required,dive"`
}

// CartItemResponse detalle de una línea en la vista agregada.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Amount    int    `json:"amount"`
}

// CartResponse vista agregada del carrito (misma forma en lectura y en reemplazo).
type CartResponse struct {
	Count int                `json:"count"`
	Total int64              `json:"total"`
	Items []CartItemResponse `json:"items"`
}
