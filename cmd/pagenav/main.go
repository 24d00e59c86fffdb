// Command pagenav computes page-number windows and renders page navigation
// controls for terminals and HTML.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/pkg/version"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command with args.
func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
