package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant_ordering/internal/services"

	"github.com/gin-gonic/gin"
)

// menuItemRequest accepts both the short field names and the ones the
// admin frontend sends (itemId, itemName).
type menuItemRequest struct {
	Category string   `json:"category"`
	ID       uint     `json:"id"`
	ItemID   uint     `json:"itemId"`
	Name     string   `json:"name"`
	ItemName string   `json:"itemName"`
	Price    *float64 `json:"price"`
}

func (r *menuItemRequest) itemID() uint {
	if r.ID != 0 {
		return r.ID
	}
	return r.ItemID
}

func (r *menuItemRequest) name() string {
	if strings.TrimSpace(r.Name) != "" {
		return r.Name
	}
	return r.ItemName
}

func (h *APIHandler) Categories(c *gin.Context) {
	respondOK(c, h.menuService.ListCategories(), "")
}

func (h *APIHandler) ListMenu(c *gin.Context) {
	items, err := h.menuService.ListItems(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items, "")
}

func (h *APIHandler) GetMenuItem(c *gin.Context) {
	id, err := parseItemID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), c.Param("category"), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item, "")
}

func (h *APIHandler) MenuSummary(c *gin.Context) {
	summary, err := h.menuService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summary, "")
}

func (h *APIHandler) AddMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	item, err := h.menuService.AddItem(c.Request.Context(), req.Category, req.name(), req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item, "Item added successfully")
}

func (h *APIHandler) UpdateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), req.Category, req.itemID(), req.name(), req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, item, "Item updated successfully")
}

func (h *APIHandler) DeleteMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), req.Category, req.itemID()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Item deleted successfully")
}

// parseItemID rejects malformed ids only. Id 0 never names a row, so a read
// for it ends in NotFound.
func parseItemID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid item id %q", services.ErrInvalidArgument, raw)
	}
	return uint(id), nil
}
