package graphql

import (
	"encoding/json"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"go.uber.org/zap"
)

// Handler exposes the executor over HTTP.
type Handler struct {
	executor   *Executor
	playground fiber.Handler
	logger     *zap.Logger
}

// NewHandler creates the HTTP handler. When playground is true, GET
// requests without a query get the GraphQL playground pointed at endpoint.
func NewHandler(executor *Executor, endpoint string, playgroundEnabled bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		executor: executor,
		logger:   logger.Named("graphql.http"),
	}
	if playgroundEnabled {
		h.playground = adaptor.HTTPHandlerFunc(playground.Handler("CV GraphQL", endpoint))
	}
	return h
}

// RegisterRoutes mounts GET and POST on path.
func (h *Handler) RegisterRoutes(r fiber.Router, path string) {
	r.Get(path, h.Get)
	r.Post(path, h.Post)
}

// Post executes {query, variables, operationName} from the JSON body.
func (h *Handler) Post(c fiber.Ctx) error {
	var req Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object with a query")
	}
	return h.execute(c, req)
}

// Get executes a query passed in the query string, or serves the
// playground.
func (h *Handler) Get(c fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		if h.playground == nil {
			return fiber.ErrNotFound
		}
		return h.playground(c)
	}

	req := Request{Query: query, OperationName: c.Query("operationName")}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "variables must be a JSON object")
		}
	}
	return h.execute(c, req)
}

func (h *Handler) execute(c fiber.Ctx, req Request) error {
	if req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query is required")
	}

	resp, err := h.executor.Execute(c.Context(), req)
	if err != nil {
		return err
	}

	if len(resp.Errors) > 0 {
		h.logger.Debug("graphql request rejected",
			zap.String("operation", req.OperationName),
			zap.Int("errors", len(resp.Errors)),
			zap.String("first_error", resp.Errors[0].Message),
		)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
