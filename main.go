package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/maze-game/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
