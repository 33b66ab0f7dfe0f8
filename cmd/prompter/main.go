package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrAlreadyReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isVerbose() bool {
	v := os.Getenv(domain.EnvDebug)
	return v == "1" || strings.EqualFold(v, "true")
}
