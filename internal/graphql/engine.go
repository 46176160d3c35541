package graphql

import (
	"context"
	"fmt"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/executor"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/goliatone/go-cv-backend/internal/queries"
	goerrors "github.com/goliatone/go-errors"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// Parsed and validated documents kept by query text.
const queryCacheSize = 1000

// Request is the body of a GraphQL-over-HTTP call.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the GraphQL result. Data is null when the request failed
// validation or a non-null root field resolved to null.
type Response = gqlgen.Response

// Executor runs queries through gqlgen's executor.
type Executor struct {
	exec   *executor.Executor
	schema *ast.Schema
	logger *zap.Logger
}

// NewExecutor wraps es with introspection enabled and errors presented
// with their go-errors text codes.
func NewExecutor(es gqlgen.ExecutableSchema, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Executor{
		exec:   executor.New(es),
		schema: es.Schema(),
		logger: logger.Named("graphql"),
	}
	e.exec.Use(extension.Introspection{})
	e.exec.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	e.exec.SetErrorPresenter(presentError)
	e.exec.SetRecoverFunc(e.recover)
	return e
}

// New loads the schema and returns an executor over set.
func New(set *queries.Set, paging PageConfig, logger *zap.Logger) (*Executor, error) {
	s, err := LoadSchema()
	if err != nil {
		return nil, err
	}
	return NewExecutor(NewExecutableSchema(s, NewResolver(set, paging, logger)), logger), nil
}

// Schema returns the schema queries are validated against.
func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

// Execute parses, validates and runs req. Problems with the request are
// returned in Response.Errors. A returned error means a resolver failed
// for a reason the caller cannot fix, such as the database being down.
func (e *Executor) Execute(ctx context.Context, req Request) (*Response, error) {
	ctx = gqlgen.StartOperationTrace(ctx)
	start := gqlgen.Now()

	opCtx, errs := e.exec.CreateOperationContext(ctx, &gqlgen.RawParams{
		Query:         req.Query,
		OperationName: req.OperationName,
		Variables:     req.Variables,
		ReadTime:      gqlgen.TraceTiming{Start: start, End: start},
	})
	if errs != nil {
		return e.exec.DispatchError(gqlgen.WithOperationContext(ctx, opCtx), errs), nil
	}

	handler, ctx := e.exec.DispatchOperation(ctx, opCtx)
	resp := handler(ctx)
	if err := executionFailure(resp.Errors); err != nil {
		return nil, err
	}
	return resp, nil
}

func (e *Executor) recover(ctx context.Context, r any) error {
	path := gqlgen.GetPath(ctx)
	e.logger.Error("resolver panic",
		zap.String("path", path.String()),
		zap.String("panic", fmt.Sprint(r)),
		zap.Stack("stack"),
	)
	return goerrors.New("internal system error", goerrors.CategoryInternal)
}
