package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

// Transactor runs fn inside one unit of work. Repository calls made with the
// context passed to fn join the transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ Transactor = (*Storage)(nil)

// sessionHandle is the part of mongo.Session the writer drives.
type sessionHandle interface {
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
	EndSession(ctx context.Context)
}

// Writer is an open transaction. Commit or Rollback ends it.
type Writer struct {
	session sessionHandle
	ctx     context.Context
	Repositories
}

// Write starts a session and a transaction on it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return nil, apperrors.Internal("storage.Write.StartSession", err)
	}
	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return nil, apperrors.Internal("storage.Write.StartTransaction", err)
	}

	return &Writer{
		session:      session,
		ctx:          mongo.NewSessionContext(ctx, session),
		Repositories: s.Repositories,
	}, nil
}

// Context carries the session; pass it to repository calls.
func (w *Writer) Context() context.Context {
	return w.ctx
}

func (w *Writer) Commit() error {
	defer w.session.EndSession(w.ctx)
	if err := w.session.CommitTransaction(w.ctx); err != nil {
		return apperrors.Internal("storage.Writer.Commit", err)
	}
	return nil
}

func (w *Writer) Rollback() error {
	defer w.session.EndSession(w.ctx)
	if err := w.session.AbortTransaction(w.ctx); err != nil {
		return apperrors.Internal("storage.Writer.Rollback", err)
	}
	return nil
}

// RunInTransaction commits when fn succeeds and rolls back otherwise. fn's
// error is returned unchanged.
func (s *Storage) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	writer, err := s.Write(ctx)
	if err != nil {
		return err
	}
	return runWriter(writer, fn)
}

func runWriter(writer *Writer, fn func(ctx context.Context) error) error {
	if err := fn(writer.Context()); err != nil {
		_ = writer.Rollback()
		return err
	}
	return writer.Commit()
}
