package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repository"
	"github.com/yeremiapane/reservation-app/utils"
)

var ErrNegativeStock = errors.New("stock cannot be negative")

type ItemController struct {
	Items repository.ItemRepository
}

func NewItemController(items repository.ItemRepository) *ItemController {
	return &ItemController{Items: items}
}

// CreateItem -> add an inventory item
func (ic *ItemController) CreateItem(c *gin.Context) {
	var req struct {
		Name           string `json:"name" binding:"required"`
		Category       string `json:"category"`
		Vendor         string `json:"vendor"`
		Unit           string `json:"unit"`
		StockRemaining int    `json:"stock_remaining"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.StockRemaining < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNegativeStock)
		return
	}

	item := models.Item{
		Name:           req.Name,
		Category:       req.Category,
		Vendor:         req.Vendor,
		Unit:           req.Unit,
		StockRemaining: req.StockRemaining,
	}
	if err := ic.Items.Create(&item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Item created: %s", item.Name)
	utils.RespondJSON(c, http.StatusCreated, "Item created successfully", item)
}

// GetAllItems -> full inventory list
func (ic *ItemController) GetAllItems(c *gin.Context) {
	items, err := ic.Items.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of items", items)
}

// GetItemByID -> detail of one item
func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.Items.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

// UpdateItem -> partial edit of an item
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name           *string `json:"name"`
		Category       *string `json:"category"`
		Vendor         *string `json:"vendor"`
		Unit           *string `json:"unit"`
		StockRemaining *int    `json:"stock_remaining"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.Items.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Vendor != nil {
		item.Vendor = *req.Vendor
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.StockRemaining != nil {
		if *req.StockRemaining < 0 {
			utils.RespondError(c, http.StatusBadRequest, ErrNegativeStock)
			return
		}
		item.StockRemaining = *req.StockRemaining
	}

	if err := ic.Items.Save(item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// UpdateItemStock -> set the remaining stock count
func (ic *ItemController) UpdateItemStock(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		StockRemaining *int `json:"stock_remaining" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.StockRemaining < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNegativeStock)
		return
	}

	item, err := ic.Items.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	item.StockRemaining = *req.StockRemaining
	if err := ic.Items.Save(item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Item %d stock set to %d", item.ID, item.StockRemaining)
	utils.RespondJSON(c, http.StatusOK, "Item stock updated", item)
}

// DeleteItem -> hard delete
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := paramID(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ic.Items.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	if err := ic.Items.Delete(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item deleted", gin.H{"id": id})
}
