package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/ticklist/internal/domain/todo"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TodoService defines the store operations exposed over MCP. The view
// side never mutates the collection directly; it issues commands and
// receives snapshots.
type TodoService interface {
	Todos() []todo.Item
	Add(ctx context.Context, text string) ([]todo.Item, error)
	Toggle(ctx context.Context, id string) ([]todo.Item, error)
	Remove(ctx context.Context, id string) ([]todo.Item, error)
	ClearAll(ctx context.Context) ([]todo.Item, error)
}

// Config contains server configuration.
type Config struct {
	Todos  TodoService
	Logger *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "ticklist",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Todos)

	return server
}
