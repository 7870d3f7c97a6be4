package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wikiguess/cmd/wikiguess/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, &http.Client{})

	stop()

	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
