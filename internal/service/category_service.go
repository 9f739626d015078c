package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/validation"
)

const categoryEntity = "category"

// CategoryService handles category business logic. Every read and write is
// scoped to the requesting user; a category owned by someone else is
// reported as not found.
type CategoryService struct {
	categories storage.IRepository[storage.CategoryDocument]
	validator  *validation.CategoryValidator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{
		categories: store.Categories,
		validator:  validation.NewCategoryValidator(),
	}
}

// GetAll returns every category owned by userID.
func (s *CategoryService) GetAll(ctx context.Context, userID string) ([]model.Category, error) {
	if userID == "" {
		return nil, apperrors.InvalidArgument("userID is required")
	}
	docs, err := s.categories.Find(ctx, bson.D{storage.OwnedBy(userID)})
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, categoryFromDocument(doc))
	}
	return categories, nil
}

// GetByID returns the category if it exists and belongs to userID.
func (s *CategoryService) GetByID(ctx context.Context, id, userID string) (*model.Category, error) {
	doc, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	category := categoryFromDocument(doc)
	return &category, nil
}

// Create validates and inserts a category. Any client-supplied id is
// discarded.
func (s *CategoryService) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	if errs := s.validator.Validate(category); !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}

	doc := categoryToDocument(category)
	doc.ClearID()
	added, err := s.categories.Add(ctx, doc)
	if err != nil {
		return nil, err
	}
	created := categoryFromDocument(added)
	return &created, nil
}

// Update fully replaces the category. The stored owner is always userID.
func (s *CategoryService) Update(ctx context.Context, id string, category model.Category, userID string) (*model.Category, error) {
	if id == "" || userID == "" {
		return nil, apperrors.InvalidArgument("id and userID are required")
	}
	category.ID = id
	category.OwnerID = userID
	if errs := s.validator.Validate(category); !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}

	existing, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Keep the stored identifiers so a key-addressed record keeps its key.
	doc := categoryToDocument(category)
	doc.DocumentKey = existing.DocumentKey
	updated, err := s.categories.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	result := categoryFromDocument(updated)
	return &result, nil
}

// UpdatePartial applies only the fields set on patch and re-validates the
// merged category. The owner never changes.
func (s *CategoryService) UpdatePartial(ctx context.Context, id string, patch model.CategoryPatch, userID string) (*model.Category, error) {
	doc, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	merged := categoryFromDocument(doc)
	if name, ok := patch.Name.Get(); ok {
		merged.Name = name
	}
	if kind, ok := patch.Kind.Get(); ok {
		merged.Kind = kind
	}
	merged.OwnerID = doc.OwnerID

	if errs := s.validator.Validate(merged); !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}

	doc.Name = merged.Name
	doc.Kind = string(merged.Kind)
	updated, err := s.categories.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	result := categoryFromDocument(updated)
	return &result, nil
}

// Delete removes the category if userID owns it.
func (s *CategoryService) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return apperrors.InvalidArgument("id and userID are required")
	}
	exists, err := s.categories.Exists(ctx, storage.ResolveID(id).With(storage.OwnedBy(userID)))
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound(categoryEntity, id)
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(categoryEntity, id)
	}
	return nil
}

func (s *CategoryService) findOwned(ctx context.Context, id, userID string) (*storage.CategoryDocument, error) {
	if id == "" || userID == "" {
		return nil, apperrors.InvalidArgument("id and userID are required")
	}
	doc, err := s.categories.FirstOrDefault(ctx, storage.ResolveID(id).With(storage.OwnedBy(userID)))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperrors.NotFound(categoryEntity, id)
	}
	return doc, nil
}
