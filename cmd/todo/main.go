package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ganot/ticklist/internal/cli"
	"github.com/ganot/ticklist/internal/config"
	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/ganot/ticklist/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	plain := flag.Bool("plain", false, "print the list without the interactive view")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	repo, closeRepo, err := storage.Open(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage error: %v\n", err)
		return 1
	}
	defer closeRepo()

	store := todo.NewStore(repo, nil)
	if _, err := store.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", err)
		return 1
	}

	return cli.Run(store, flag.Args(), cli.Options{Plain: *plain})
}
