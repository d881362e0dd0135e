package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ganot/ticklist/internal/domain/todo"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires the store surface into the MCP server.
func registerTools(server *sdkmcp.Server, svc TodoService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_todos",
		Description: "List all todos, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ ListTodosParams) (*sdkmcp.CallToolResult, any, error) {
		return collectionResult(svc.Todos())
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_todo",
		Description: "Add a todo; the new item is prepended with done=false",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args AddTodoParams) (*sdkmcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Text) == "" {
			return nil, nil, fmt.Errorf("text must not be blank")
		}
		items, err := svc.Add(ctx, args.Text)
		if err != nil {
			return nil, nil, err
		}
		return collectionResult(items)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_todo",
		Description: "Flip the done flag of a todo; unknown ids are a no-op",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ToggleTodoParams) (*sdkmcp.CallToolResult, any, error) {
		items, err := svc.Toggle(ctx, args.ID)
		if err != nil {
			return nil, nil, err
		}
		return collectionResult(items)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_todo",
		Description: "Remove a todo; unknown ids are a no-op",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args RemoveTodoParams) (*sdkmcp.CallToolResult, any, error) {
		items, err := svc.Remove(ctx, args.ID)
		if err != nil {
			return nil, nil, err
		}
		return collectionResult(items)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_todos",
		Description: "Empty the list and delete the persisted copy",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ ClearTodosParams) (*sdkmcp.CallToolResult, any, error) {
		items, err := svc.ClearAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return collectionResult(items)
	})
}

func collectionResult(items []todo.Item) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(CollectionResponse{Todos: items})
	if err != nil {
		return nil, nil, fmt.Errorf("encode response: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
