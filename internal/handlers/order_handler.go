package handlers

import (
	"fmt"
	"strconv"

	"restaurant_ordering/internal/models"
	"restaurant_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

type cartLineRequest struct {
	Name       string   `json:"name"`
	ItemName   string   `json:"itemName"`
	UnitPrice  *float64 `json:"unitPrice"`
	Price      *float64 `json:"price"`
	Quantity   int      `json:"quantity"`
	TotalPrice *float64 `json:"totalPrice"`
}

type cartRequest struct {
	Items []cartLineRequest `json:"items"`
}

// cart converts the request into cart lines. Prices must be present on every
// line; a zero price is only accepted when the client sent it.
func (r *cartRequest) cart() ([]models.CartLine, error) {
	cart := make([]models.CartLine, 0, len(r.Items))
	for i, item := range r.Items {
		line := models.CartLine{
			ItemName: item.Name,
			Quantity: item.Quantity,
		}
		if line.ItemName == "" {
			line.ItemName = item.ItemName
		}
		switch {
		case item.UnitPrice != nil:
			line.UnitPrice = *item.UnitPrice
		case item.Price != nil:
			line.UnitPrice = *item.Price
		default:
			return nil, fmt.Errorf("%w: line %d: unit price is required", services.ErrInvalidArgument, i+1)
		}
		if item.TotalPrice == nil {
			return nil, fmt.Errorf("%w: line %d: total price is required", services.ErrInvalidArgument, i+1)
		}
		line.TotalPrice = *item.TotalPrice
		cart = append(cart, line)
	}
	return cart, nil
}

func (h *APIHandler) PlaceOrder(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	cart, err := req.cart()
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.orderService.PlaceOrder(c.Request.Context(), cart); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Order placed successfully")
}

func (h *APIHandler) QuoteOrder(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	cart, err := req.cart()
	if err != nil {
		respondError(c, err)
		return
	}
	quote, err := h.orderService.Quote(cart)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, quote, "")
}

func (h *APIHandler) ListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, fmt.Errorf("%w: limit must be a number", services.ErrInvalidArgument))
			return
		}
		limit = n
	}

	orders, err := h.orderService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders, "")
}

func (h *APIHandler) Statistics(c *gin.Context) {
	stats, err := h.statsService.ComputeStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats, "")
}
