package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/linkden/linkden/internal/api/middleware"
	"github.com/linkden/linkden/internal/api/shared"
	"github.com/linkden/linkden/internal/billing"
	"github.com/linkden/linkden/internal/service"
)

// AccountHandler handles account-related API requests.
type AccountHandler struct {
	accountService *service.AccountService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService *service.AccountService, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountHandler{
		accountService: accountService,
		validator:      validator.New(),
		logger:         logger.With("component", "account_handler"),
	}
}

// DeleteAccount handles DELETE /api/account. The authenticated user
// deletes their own account; the request body carries the credential
// proof and optional billing cancellation metadata.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found in request context")
		return
	}

	var req DeleteAccountRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Password is required")
		return
	}

	outcome, err := h.accountService.DeleteAccount(r.Context(), userID, req.Password, billing.CancellationDetails{
		Comment:  req.CancellationComment,
		Feedback: req.CancellationFeedback,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if outcome.Cancellation != nil {
		shared.RespondWithJSON(w, r, http.StatusOK, outcome.Cancellation)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, outcome.Message)
}
