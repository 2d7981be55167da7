package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Wilovy09/pgmq-test/internal/authctl"
)

func main() {
	app := authctl.NewApp(os.Stdin, os.Stdout)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
