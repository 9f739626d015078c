package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/model"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	Create(ctx context.Context, category model.Category) (*model.Category, error)
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Description:   "Creates a category owned by the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.CategoryService.Create(ctx, model.Category{
		Name:    input.Body.Name,
		Kind:    model.Kind(input.Body.Kind),
		OwnerID: userID,
	})
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to create category")
	}
	return &CreateCategoryOutput{Status: http.StatusCreated, Body: fromModel(*created)}, nil
}
