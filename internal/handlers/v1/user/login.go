package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

// LoginBody is the request body for login.
type LoginBody struct {
	Username string `json:"username" required:"true" doc:"Username"`
	Password string `json:"password" required:"true" doc:"Plain-text password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body struct {
		Token string `json:"token" doc:"Signed bearer token"`
	}
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService userService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc userService) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Exchanges a username and password for a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.UserService.Login(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to log in")
	}
	out := &LoginOutput{}
	out.Body.Token = token
	return out, nil
}
