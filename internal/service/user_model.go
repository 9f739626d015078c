package service

import (
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
)

func userToDocument(user model.User) *storage.UserDocument {
	doc := &storage.UserDocument{
		Username:           user.Username,
		PasswordCredential: user.PasswordCredential,
		Active:             user.Active,
		Role:               string(user.Role),
	}
	doc.SetDocumentID(user.ID)
	return doc
}

func userFromDocument(doc *storage.UserDocument) model.User {
	return model.User{
		ID:                 doc.DocumentID(),
		Username:           doc.Username,
		PasswordCredential: doc.PasswordCredential,
		Active:             doc.Active,
		Role:               model.Role(doc.Role),
	}
}
