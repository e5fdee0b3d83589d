package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/allocator/pkg/interfaces/cli/commands"
)

func main() {
	cmd := commands.NewRootCommand()
	ctx := context.Background()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
