package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeNotFound    = "NOT_FOUND"
	TextCodeUnavailable = "STORAGE_UNAVAILABLE"
)

// NotFound builds the error returned when a lookup by id matches no row.
func NotFound(entity string, id any) error {
	return goerrors.New(fmt.Sprintf("%s %v not found", entity, id), goerrors.CategoryNotFound).
		WithTextCode(TextCodeNotFound).
		WithMetadata(map[string]any{"entity": entity, "id": fmt.Sprint(id)})
}

// IsNotFound reports whether err is a missing-row error.
func IsNotFound(err error) bool {
	return goerrors.IsNotFound(err)
}

// IsUnavailable reports whether err is a wrapped driver or connection fault.
func IsUnavailable(err error) bool {
	var gerr *goerrors.Error
	if !goerrors.As(err, &gerr) {
		return false
	}
	return gerr.TextCode == TextCodeUnavailable
}

func wrapQueryErr(err error, entity, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if goerrors.IsNotFound(err) {
		return err
	}
	wrapped := goerrors.New(fmt.Sprintf("%s %s", op, entity), goerrors.CategoryExternal).
		WithTextCode(TextCodeUnavailable).
		WithMetadata(map[string]any{"entity": entity, "operation": op})
	wrapped.Source = err
	return wrapped
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
