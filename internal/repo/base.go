package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base carries the GORM handle shared by every domain repository. Embedding it
// keeps connection plumbing out of the individual repository types.
type Base struct {
	conn *gorm.DB
}

// NewBase wraps a GORM connection for embedding in a repository.
func NewBase(conn *gorm.DB) Base {
	return Base{conn: conn}
}

// DB yields a session scoped to ctx. A nil context returns the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.conn
	}
	return b.conn.WithContext(ctx)
}
