package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/tatianab/maze-game/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
