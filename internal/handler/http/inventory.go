package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler interface {
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	RecordSale(w http.ResponseWriter, r *http.Request)
	ListStock(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	ListSales(w http.ResponseWriter, r *http.Request)
	DeletePurchase(w http.ResponseWriter, r *http.Request)
	DeleteSale(w http.ResponseWriter, r *http.Request)
	DeleteStockItem(w http.ResponseWriter, r *http.Request)
	LookupCategory(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{
		inventoryService: inventoryService,
	}
}

// RecordPurchase implements InventoryHandler.
func (h *inventoryHandlerImpl) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req inventory.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.RecordPurchase(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase recorded", result)
}

// RecordSale implements InventoryHandler.
func (h *inventoryHandlerImpl) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req inventory.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.RecordSale(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded", result)
}

// ListStock implements InventoryHandler.
func (h *inventoryHandlerImpl) ListStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListStock(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPurchases implements InventoryHandler.
func (h *inventoryHandlerImpl) ListPurchases(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListPurchases(r.Context(), movementFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSales implements InventoryHandler.
func (h *inventoryHandlerImpl) ListSales(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListSales(r.Context(), movementFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePurchase implements InventoryHandler.
func (h *inventoryHandlerImpl) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeletePurchase(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase deleted", nil)
}

// DeleteSale implements InventoryHandler.
func (h *inventoryHandlerImpl) DeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteSale(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sale deleted", nil)
}

// DeleteStockItem implements InventoryHandler.
func (h *inventoryHandlerImpl) DeleteStockItem(w http.ResponseWriter, r *http.Request) {
	if err := h.inventoryService.DeleteStockItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock item deleted", nil)
}

// LookupCategory implements InventoryHandler.
func (h *inventoryHandlerImpl) LookupCategory(w http.ResponseWriter, r *http.Request) {
	itemName := r.URL.Query().Get("item_name")
	if itemName == "" {
		response.BadRequest(w, "Query parameter 'item_name' is required", nil)
		return
	}

	category, err := h.inventoryService.LookupCategory(r.Context(), itemName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"item_name": itemName, "category": category})
}

func movementFilterFromQuery(r *http.Request) inventory.MovementFilter {
	filter := inventory.MovementFilter{
		ItemName: r.URL.Query().Get("item_name"),
	}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = &t
		}
	}
	return filter
}
