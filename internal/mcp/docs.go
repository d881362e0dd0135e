package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `ticklist keeps a single ordered todo list, newest first.

Tools:
- list_todos: read the current collection.
- add_todo {text}: prepend a new pending item (blank text is rejected).
- toggle_todo {id}: flip completion; unknown ids are a no-op.
- remove_todo {id}: delete an item; unknown ids are a no-op.
- clear_todos: empty the list and delete the persisted copy.

Every mutation is persisted before the tool returns. If the persisted
data was unreadable at startup, the server begins from a small default
list instead of failing.
`

const usageDoc = `# ticklist usage

ticklist is a local, single-user todo store. Its state is one ordered
collection of items, newest first, held in memory and mirrored to a
persistent slot after every mutation.

## Items

Each item has an immutable id and text, a mutable done flag, and an
optional createdAt timestamp (epoch milliseconds). Ids are unique
within the collection.

## Persistence and recovery

The collection is stored as a JSON array under a fixed key, either in a
SQLite key/value table or a JSON file, depending on configuration. On
startup the store loads the slot; if it is missing or cannot be
decoded, the store falls back to a built-in three-item default list.
The fallback is deliberate and silent: a damaged slot never blocks the
application. The damaged data is only replaced on the next mutation.

## Semantics worth knowing

- add_todo prepends; the newest item is always first.
- toggle_todo and remove_todo with an id that does not exist leave the
  collection untouched and succeed.
- clear_todos deletes the slot rather than writing an empty array, so
  the next fresh start is seeded with the default list again.
- There is no cross-process coordination: two processes writing the
  same slot overwrite each other, last write wins.
`

func registerDocResources(server *sdkmcp.Server) {
	server.AddResource(&sdkmcp.Resource{
		URI:         "ticklist://docs/usage",
		Name:        "usage",
		Title:       "ticklist usage",
		Description: "How the todo tools behave, including persistence and recovery rules",
		MIMEType:    "text/markdown",
		Size:        int64(len(usageDoc)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := "ticklist://docs/usage"
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     usageDoc,
			}},
		}, nil
	})
}
