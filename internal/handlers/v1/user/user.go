package user

import (
	"context"

	"github.com/carson-networks/finance-server/internal/model"
)

// User is the API response model for a user. The password credential is
// never returned.
type User struct {
	ID       string `json:"id" doc:"User id"`
	Username string `json:"username" doc:"Normalized (trimmed, lowercase) username"`
	Active   bool   `json:"active" doc:"Whether the account may log in"`
	Role     string `json:"role" enum:"admin,usuario" doc:"Authorization role"`
}

// userService is the subset of the user service the handlers call.
type userService interface {
	Register(ctx context.Context, username, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	SetActive(ctx context.Context, username string, active bool) error
	DeleteAccount(ctx context.Context, userID string) error
}

func fromModel(u model.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Active:   u.Active,
		Role:     string(u.Role),
	}
}
