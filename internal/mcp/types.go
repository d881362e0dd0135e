package mcp

import "github.com/ganot/ticklist/internal/domain/todo"

type ListTodosParams struct{}

type AddTodoParams struct {
	Text string `json:"text"`
}

type ToggleTodoParams struct {
	ID string `json:"id"`
}

type RemoveTodoParams struct {
	ID string `json:"id"`
}

type ClearTodosParams struct{}

// CollectionResponse is the payload returned by every todo tool: the
// full collection after the operation, newest first.
type CollectionResponse struct {
	Todos []todo.Item `json:"todos"`
}
