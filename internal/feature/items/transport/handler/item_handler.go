// Package handler provides the HTTP handlers for the items feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/items/domain/entity"
	"todo_backend/internal/feature/items/transport/http/dto"
	"todo_backend/internal/feature/items/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// ItemUsecase defines the usecase for item operations.
// Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type ItemUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateItemInput) (*entity.Item, error)
	List(ctx context.Context, userID uint) ([]*entity.Item, error)
	Update(ctx context.Context, userID, id uint, in usecase.UpdateItemInput) (*entity.Item, error)
	Delete(ctx context.Context, userID, id uint) error
}

// ItemHandler handles HTTP requests for item operations. Every route
// it serves sits behind RequireSession, so a principal is always
// present.
type ItemHandler struct {
	items ItemUsecase
}

// NewItemHandler creates a new instance of ItemHandler.
func NewItemHandler(items ItemUsecase) *ItemHandler {
	return &ItemHandler{items: items}
}

// List handles GET /users/itemData, returning the principal's items
// newest first.
func (h *ItemHandler) List(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	items, err := h.items.List(c.Request.Context(), p.UserID)
	if err != nil {
		slog.Error("item listing failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// Create handles POST /users/itemData.
func (h *ItemHandler) Create(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	var req dto.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "All fields are required"})
		return
	}

	in := usecase.CreateItemInput{
		Name:           req.Name,
		StartDate:      req.StartDate,
		CompletionDate: req.CompletionDate,
		Amount:         req.Amount,
	}
	if _, err := h.items.Create(c.Request.Context(), p.UserID, in); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		slog.Error("item creation failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error adding item data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": "Item added"})
}

// Update handles PATCH /users/itemData/:id with a partial field merge.
func (h *ItemHandler) Update(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	id, err := parseItemID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid item id"})
		return
	}

	var req dto.UpdateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data provided for update"})
		return
	}

	in := usecase.UpdateItemInput{
		Name:           req.Name,
		StartDate:      req.StartDate,
		CompletionDate: req.CompletionDate,
		Amount:         req.Amount,
	}
	item, err := h.items.Update(c.Request.Context(), p.UserID, id, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "No data provided for update"})
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Item does not exist"})
		default:
			slog.Error("item update failed", "error", err, "user_id", p.UserID, "item_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Item updated successfully", "item": item})
}

// Delete handles DELETE /users/itemData/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	id, err := parseItemID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid item id"})
		return
	}

	if err := h.items.Delete(c.Request.Context(), p.UserID, id); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Item does not exist"})
			return
		}
		slog.Error("item deletion failed", "error", err, "user_id", p.UserID, "item_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Item deleted"})
}

func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
