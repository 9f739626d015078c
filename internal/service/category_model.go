package service

import (
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
)

func categoryToDocument(category model.Category) *storage.CategoryDocument {
	doc := &storage.CategoryDocument{
		Name:    category.Name,
		Kind:    string(category.Kind),
		OwnerID: category.OwnerID,
	}
	doc.SetDocumentID(category.ID)
	return doc
}

func categoryFromDocument(doc *storage.CategoryDocument) model.Category {
	return model.Category{
		ID:      doc.DocumentID(),
		Name:    doc.Name,
		Kind:    model.Kind(doc.Kind),
		OwnerID: doc.OwnerID,
	}
}
