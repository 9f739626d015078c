package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/model"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Categories owned by the caller"`
	}
}

// categoryReader is the interface for reading categories.
type categoryReader interface {
	GetAll(ctx context.Context, userID string) ([]model.Category, error)
	GetByID(ctx context.Context, id, userID string) (*model.Category, error)
}

// ReadCategoryHandler handles GET /v1/categories and GET /v1/categories/{id}.
type ReadCategoryHandler struct {
	CategoryService categoryReader
}

// NewReadCategoryHandler creates a new ReadCategoryHandler.
func NewReadCategoryHandler(svc categoryReader) *ReadCategoryHandler {
	return &ReadCategoryHandler{CategoryService: svc}
}

// Register registers the read endpoints with the Huma API.
func (h *ReadCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns every category owned by the caller.",
		Tags:        []string{"Categories"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get category",
		Description: "Returns one category owned by the caller.",
		Tags:        []string{"Categories"},
	}, h.get)
}

func (h *ReadCategoryHandler) list(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logData.AddTiming("listCategoriesMs")
	categories, err := h.CategoryService.GetAll(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to list categories")
	}
	logData.AddData("categoryCount", len(categories))

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromModel(c)
	}
	return out, nil
}

func (h *ReadCategoryHandler) get(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetByID(ctx, input.ID, userID)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to get category")
	}
	return &CategoryOutput{Body: fromModel(*category)}, nil
}
