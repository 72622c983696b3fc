package main

import (
	"context"
	"os"

	"github.com/xiaobei930/claude-code-best-practices/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()

	root := cli.NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(cli.HandleError(os.Stderr, err))
	}
}
