package main

import (
	"context"

	"github.com/faizmokh/tasklist/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
