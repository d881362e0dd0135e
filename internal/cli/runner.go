package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ganot/ticklist/internal/domain/todo"
)

// Options tune output behavior from root flags.
type Options struct {
	Plain bool // print the list once instead of opening the interactive view
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(store *todo.Store, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if store.Recovered() {
		fmt.Fprintln(os.Stderr, mutedStyle.Render("note: saved todos were unreadable, starting from defaults"))
	}
	cmd, a := args[0], args[1:]
	ctx := context.Background()

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(store, opt)

	case "add":
		if len(a) == 0 {
			fail("usage: todo add <text...>")
			return 2
		}
		return doAdd(ctx, store, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			fail("usage: todo done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(ctx, store, n)

	case "rm":
		if len(a) != 1 {
			fail("usage: todo rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(ctx, store, n)

	case "clear":
		return doClear(ctx, store)
	}

	fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny CLI over the ticklist store

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  add <text...>      Add a new item (text can be multiple words)
  ls                 List items (interactive; use -plain for a one-shot list)
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index
  clear              Remove all items and delete the saved list

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`)
}

// -------------- subcommand impls ----------------

func doList(store *todo.Store, opt Options) int {
	if !opt.Plain {
		if err := runInteractiveList(store); err != nil {
			fail("ui: " + err.Error())
			return 1
		}
		return 0
	}

	items := store.Todos()
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
		accentStyle.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, mutedStyle.Render(progressBar(d, d+p, 28)))
	lines = append(lines, "")
	lines = append(lines, flatLines(items)...)
	panel(lines)
	return 0
}

func doAdd(ctx context.Context, store *todo.Store, text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		fail("add: empty text")
		return 2
	}
	if _, err := store.Add(ctx, text); err != nil {
		fail("add: " + err.Error())
		return 1
	}
	ok("added")
	return 0
}

func doToggle(ctx context.Context, store *todo.Store, userIndex int) int {
	items := store.Todos()
	id, found := resolveIndex(items, userIndex)
	if !found {
		fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(os.Stderr, mutedStyle.Render("Hint: run `todo ls` to see valid indexes"))
		return 2
	}
	if _, err := store.Toggle(ctx, id); err != nil {
		fail("toggle: " + err.Error())
		return 1
	}
	ok("toggled")
	return 0
}

func doRemove(ctx context.Context, store *todo.Store, userIndex int) int {
	items := store.Todos()
	id, found := resolveIndex(items, userIndex)
	if !found {
		fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(os.Stderr, mutedStyle.Render("Hint: run `todo ls` to see valid indexes"))
		return 2
	}
	if _, err := store.Remove(ctx, id); err != nil {
		fail("rm: " + err.Error())
		return 1
	}
	ok("removed")
	return 0
}

func doClear(ctx context.Context, store *todo.Store) int {
	if _, err := store.ClearAll(ctx); err != nil {
		fail("clear: " + err.Error())
		return 1
	}
	ok("cleared")
	return 0
}

// -------------- rendering helpers --------------

// resolveIndex maps a 1-based display index to an item id.
func resolveIndex(items []todo.Item, userIndex int) (string, bool) {
	if userIndex < 1 || userIndex > len(items) {
		return "", false
	}
	return items[userIndex-1].ID, true
}

func stats(items []todo.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []todo.Item) []string {
	if len(items) == 0 {
		return []string{mutedStyle.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := boxUnchecked
		style := mutedStyle
		if it.Done {
			box, style = boxChecked, successStyle
		}
		text := it.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", mutedStyle.Render(idx), style.Render(box), text))
	}
	return out
}
