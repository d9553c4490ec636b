package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tannerbroberts/planner-api/app"
	"github.com/tannerbroberts/planner-api/middleware"
	"github.com/tannerbroberts/planner-api/models"
	"github.com/tannerbroberts/planner-api/repositories"
	"github.com/tannerbroberts/planner-api/utils"
	"go.uber.org/zap"
)

// ListItemsHandler lists the items owned by the resolved identity
func ListItemsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		items, err := deps.Items.ListByOwner(r.Context(), identity.ID)
		if err != nil {
			deps.Logger.Error("failed to list items",
				zap.String("owner_id", identity.ID),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, "")
			return
		}

		if items == nil {
			items = []*models.Item{}
		}
		_ = utils.WriteOK(w, items)
	}
}

// CreateItemHandler creates an item owned by the resolved identity
func CreateItemHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		var req models.CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "Invalid JSON body", nil)
			return
		}

		if err := utils.ValidateStruct(&req); err != nil {
			var validationErr *utils.ValidationError
			if errors.As(err, &validationErr) {
				_ = utils.WriteBadRequest(w, validationErr.Message, validationErr.Details())
				return
			}
			_ = utils.WriteBadRequest(w, err.Error(), nil)
			return
		}

		item := models.NewItem(identity.ID, req.Name, req.Notes)
		if err := deps.Items.Create(r.Context(), item); err != nil {
			deps.Logger.Error("failed to create item",
				zap.String("owner_id", identity.ID),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, "")
			return
		}

		_ = utils.WriteCreated(w, item)
	}
}

// GetItemHandler retrieves a single item owned by the resolved identity
func GetItemHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			_ = utils.WriteBadRequest(w, "Invalid item ID", nil)
			return
		}

		item, err := deps.Items.GetByID(r.Context(), identity.ID, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				_ = utils.WriteNotFound(w, "Item not found")
				return
			}
			deps.Logger.Error("failed to get item",
				zap.String("owner_id", identity.ID),
				zap.String("item_id", id.String()),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, "")
			return
		}

		_ = utils.WriteOK(w, item)
	}
}

// UpdateItemHandler updates an item owned by the resolved identity
func UpdateItemHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			_ = utils.WriteBadRequest(w, "Invalid item ID", nil)
			return
		}

		var req models.UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "Invalid JSON body", nil)
			return
		}

		if err := utils.ValidateStruct(&req); err != nil {
			var validationErr *utils.ValidationError
			if errors.As(err, &validationErr) {
				_ = utils.WriteBadRequest(w, validationErr.Message, validationErr.Details())
				return
			}
			_ = utils.WriteBadRequest(w, err.Error(), nil)
			return
		}

		item := &models.Item{
			ID:        id,
			OwnerID:   identity.ID,
			Name:      req.Name,
			Notes:     req.Notes,
			UpdatedAt: time.Now(),
		}

		if err := deps.Items.Update(r.Context(), item); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				_ = utils.WriteNotFound(w, "Item not found")
				return
			}
			deps.Logger.Error("failed to update item",
				zap.String("owner_id", identity.ID),
				zap.String("item_id", id.String()),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, "")
			return
		}

		_ = utils.WriteOK(w, item)
	}
}

// DeleteItemHandler deletes an item owned by the resolved identity
func DeleteItemHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.GetIdentityFromContext(r.Context())
		if identity == nil {
			_ = utils.WriteInternalServerError(w, "Identity not resolved")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			_ = utils.WriteBadRequest(w, "Invalid item ID", nil)
			return
		}

		if err := deps.Items.Delete(r.Context(), identity.ID, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				_ = utils.WriteNotFound(w, "Item not found")
				return
			}
			deps.Logger.Error("failed to delete item",
				zap.String("owner_id", identity.ID),
				zap.String("item_id", id.String()),
				zap.Error(err))
			_ = utils.WriteInternalServerError(w, "")
			return
		}

		utils.WriteNoContent(w)
	}
}
