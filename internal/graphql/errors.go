package graphql

import (
	"context"
	"fmt"

	gqlgen "github.com/99designs/gqlgen/graphql"
	goerrors "github.com/goliatone/go-errors"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Text codes carried in the extensions of request errors.
const (
	TextCodeBadUserInput     = "BAD_USER_INPUT"
	TextCodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
)

func badInput(format string, args ...any) error {
	return goerrors.New(fmt.Sprintf(format, args...), goerrors.CategoryBadInput).
		WithTextCode(TextCodeBadUserInput)
}

// isRequestError reports whether err is the caller's fault. Such errors
// are reported in the response; everything else fails the request.
func isRequestError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryBadInput) ||
		goerrors.IsCategory(err, goerrors.CategoryValidation)
}

// presentError keeps the message and text code of go-errors values and
// points the error at the field it was raised on.
func presentError(ctx context.Context, err error) *gqlerror.Error {
	gerr := gqlgen.DefaultErrorPresenter(ctx, err)

	var typed *goerrors.Error
	if goerrors.As(err, &typed) {
		gerr.Message = typed.Message
		if typed.TextCode != "" {
			if gerr.Extensions == nil {
				gerr.Extensions = map[string]any{}
			}
			gerr.Extensions["code"] = typed.TextCode
		}
	}

	if len(gerr.Locations) == 0 {
		if fc := gqlgen.GetFieldContext(ctx); fc != nil && fc.Field.Field != nil && fc.Field.Position != nil {
			gerr.Locations = []gqlerror.Location{{Line: fc.Field.Position.Line, Column: fc.Field.Position.Column}}
		}
	}
	return gerr
}

// executionFailure returns the first error in list the caller could not
// have caused, unwrapped from its GraphQL envelope.
func executionFailure(list gqlerror.List) error {
	for _, e := range list {
		if isRequestError(e) {
			continue
		}
		if e.Err != nil {
			return e.Err
		}
		return e
	}
	return nil
}
