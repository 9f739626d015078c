package storage

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldObjectID   = "_id"
	FieldKey        = "key"
	FieldOwnerID    = "ownerId"
	FieldUsername   = "username"
	FieldCategoryID = "categoryId"
	FieldOccurredAt = "occurredAt"
)

// IDKind tells which identifier field an id resolves to.
type IDKind int

const (
	// IDKindObjectID is a 24-hex native document id, matched on _id.
	IDKindObjectID IDKind = iota
	// IDKindKey is any other string, matched on the plain key field.
	IDKindKey
)

// IDFilter is the resolved form of a caller-supplied id.
type IDFilter struct {
	Kind     IDKind
	ObjectID primitive.ObjectID
	Raw      string
}

// ResolveID decides whether id is a native ObjectID or a plain key. It is
// pure and never fails; an id that does not parse is treated as a key.
func ResolveID(id string) IDFilter {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return IDFilter{Kind: IDKindObjectID, ObjectID: oid, Raw: id}
	}
	return IDFilter{Kind: IDKindKey, Raw: id}
}

// Filter returns the equality filter for the resolved id.
func (f IDFilter) Filter() bson.D {
	if f.Kind == IDKindObjectID {
		return bson.D{{Key: FieldObjectID, Value: f.ObjectID}}
	}
	return bson.D{{Key: FieldKey, Value: f.Raw}}
}

// With returns the id filter combined with extra equality terms, e.g. an
// owner scope.
func (f IDFilter) With(extra ...bson.E) bson.D {
	return append(f.Filter(), extra...)
}

// OwnedBy builds the ownerId equality term.
func OwnedBy(ownerID string) bson.E {
	return bson.E{Key: FieldOwnerID, Value: ownerID}
}

// DocumentKey is embedded in every persisted document. At most one of the two
// fields is used to address a document.
type DocumentKey struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty"`
	Key      string             `bson:"key,omitempty"`
}

// DocumentID returns the id the document is addressed by. A plain key wins
// over the native id because fixtures inserted with a key still receive an
// _id from the store.
func (k *DocumentKey) DocumentID() string {
	if k.Key != "" {
		return k.Key
	}
	if k.ObjectID.IsZero() {
		return ""
	}
	return k.ObjectID.Hex()
}

// SetDocumentID stores id in whichever field ResolveID picks.
func (k *DocumentKey) SetDocumentID(id string) {
	k.ClearID()
	if id == "" {
		return
	}
	resolved := ResolveID(id)
	if resolved.Kind == IDKindObjectID {
		k.ObjectID = resolved.ObjectID
		return
	}
	k.Key = resolved.Raw
}

// SetObjectID records the id assigned by the store on insert.
func (k *DocumentKey) SetObjectID(oid primitive.ObjectID) {
	k.ObjectID = oid
}

// ClearID drops any client-supplied id so the store assigns a fresh one.
func (k *DocumentKey) ClearID() {
	k.ObjectID = primitive.NilObjectID
	k.Key = ""
}
