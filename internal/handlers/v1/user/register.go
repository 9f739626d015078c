package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/model"
)

// RegisterBody is the request body for registration.
type RegisterBody struct {
	Username string `json:"username" required:"true" doc:"Username"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Plain-text password, at least 8 characters"`
	Role     string `json:"role,omitempty" enum:"admin,usuario" doc:"Role, defaults to usuario"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registration.
type RegisterOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   User
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	UserService userService
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc userService) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates an inactive account. An administrator must activate it before login.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	user, err := h.UserService.Register(ctx, input.Body.Username, input.Body.Password, model.Role(input.Body.Role))
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to register user")
	}
	logging.GetLogData(ctx).AddData("userID", user.ID)
	return &RegisterOutput{Status: http.StatusCreated, Body: fromModel(*user)}, nil
}
