package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/linkden/linkden/internal/api/middleware"
	"github.com/linkden/linkden/internal/api/shared"
	"github.com/linkden/linkden/internal/service"
)

// CollectionHandler handles collection-related API requests.
type CollectionHandler struct {
	collectionService *service.CollectionService
	validator         *validator.Validate
	logger            *slog.Logger
}

// NewCollectionHandler creates a new CollectionHandler with the given dependencies.
func NewCollectionHandler(collectionService *service.CollectionService, logger *slog.Logger) *CollectionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionHandler{
		collectionService: collectionService,
		validator:         validator.New(),
		logger:            logger.With("component", "collection_handler"),
	}
}

// CreateCollection handles POST /api/collections. The authenticated
// user becomes the owner of the new collection.
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found in request context")
		return
	}

	var req CreateCollectionRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, collectionValidationMessage(err))
		return
	}

	collection, err := h.collectionService.CreateCollection(r.Context(), ownerID, service.CollectionProposal{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
		ParentID:    req.ParentID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, collection)
}

// collectionValidationMessage names the field that failed request
// validation instead of blaming the name for every failure.
func collectionValidationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "Name":
			return "Collection name is required"
		case "Description":
			return "Description is too long"
		case "Color":
			return "Color is too long"
		}
	}
	return "Invalid collection data"
}
