package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/model"
)

// ReplaceCategoryInput is the Huma input for PUT /v1/categories/{id}.
type ReplaceCategoryInput struct {
	ID   string `path:"id" doc:"Category id"`
	Body CategoryBody
}

// PatchCategoryBody only carries the fields to change.
type PatchCategoryBody struct {
	Name *string `json:"name,omitempty" doc:"New category name"`
	Kind *string `json:"kind,omitempty" doc:"New kind, Ingreso or Gasto"`
}

// PatchCategoryInput is the Huma input for PATCH /v1/categories/{id}.
type PatchCategoryInput struct {
	ID   string `path:"id" doc:"Category id"`
	Body PatchCategoryBody
}

// categoryUpdater is the interface for replacing and patching categories.
type categoryUpdater interface {
	Update(ctx context.Context, id string, category model.Category, userID string) (*model.Category, error)
	UpdatePartial(ctx context.Context, id string, patch model.CategoryPatch, userID string) (*model.Category, error)
}

// UpdateCategoryHandler handles PUT and PATCH /v1/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update endpoints with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "replace-category",
		Method:        http.MethodPut,
		Path:          "/v1/categories/{id}",
		Summary:       "Replace category",
		Description:   "Replaces every field of a category owned by the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.replace)

	huma.Register(api, huma.Operation{
		OperationID: "patch-category",
		Method:      http.MethodPatch,
		Path:        "/v1/categories/{id}",
		Summary:     "Patch category",
		Description: "Changes only the supplied fields and returns the merged category.",
		Tags:        []string{"Categories"},
	}, h.patch)
}

func (h *UpdateCategoryHandler) replace(ctx context.Context, input *ReplaceCategoryInput) (*struct{}, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	_, err = h.CategoryService.Update(ctx, input.ID, model.Category{
		Name: input.Body.Name,
		Kind: model.Kind(input.Body.Kind),
	}, userID)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to update category")
	}
	return nil, nil
}

// parsePatchCategoryInput turns nil body fields into unset patch fields.
func parsePatchCategoryInput(input *PatchCategoryInput) model.CategoryPatch {
	patch := model.CategoryPatch{Name: omit.FromPtr(input.Body.Name)}
	if input.Body.Kind != nil {
		patch.Kind = omit.From(model.Kind(*input.Body.Kind))
	}
	return patch
}

func (h *UpdateCategoryHandler) patch(ctx context.Context, input *PatchCategoryInput) (*CategoryOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := h.CategoryService.UpdatePartial(ctx, input.ID, parsePatchCategoryInput(input), userID)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to patch category")
	}
	return &CategoryOutput{Body: fromModel(*updated)}, nil
}
