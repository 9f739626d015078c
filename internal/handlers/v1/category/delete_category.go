package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	Delete(ctx context.Context, id, userID string) error
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete category",
		Description:   "Deletes a category owned by the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*struct{}, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.Delete(ctx, input.ID, userID); err != nil {
		return nil, apiutil.ToHumaError(err, "failed to delete category")
	}
	return nil, nil
}
