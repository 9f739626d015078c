package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

// SetActiveInput is the Huma input for PUT /v1/users/{username}/active.
type SetActiveInput struct {
	Username string `path:"username" doc:"Username to activate or deactivate"`
	Body     struct {
		Active bool `json:"active" doc:"New activation state"`
	}
}

// AccountHandler handles administrative activation and self-service account
// deletion.
type AccountHandler struct {
	UserService userService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc userService) *AccountHandler {
	return &AccountHandler{UserService: svc}
}

// Register registers the account endpoints with the Huma API.
func (h *AccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "set-user-active",
		Method:        http.MethodPut,
		Path:          "/v1/users/{username}/active",
		Summary:       "Set user activation",
		Description:   "Activates or deactivates an account. Requires the admin role.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, h.setActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/users/me",
		Summary:       "Delete account",
		Description:   "Deletes the caller's account with all of its categories and transactions.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, h.deleteAccount)
}

func (h *AccountHandler) setActive(ctx context.Context, input *SetActiveInput) (*struct{}, error) {
	if _, err := apiutil.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("targetUsername", input.Username)

	if err := h.UserService.SetActive(ctx, input.Username, input.Body.Active); err != nil {
		return nil, apiutil.ToHumaError(err, "failed to update user")
	}
	return nil, nil
}

func (h *AccountHandler) deleteAccount(ctx context.Context, _ *struct{}) (*struct{}, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.UserService.DeleteAccount(ctx, userID); err != nil {
		return nil, apiutil.ToHumaError(err, "failed to delete account")
	}
	return nil, nil
}
