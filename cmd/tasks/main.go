package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todoList/internal/cli"
)

func main() {
	// Ctrl-C прерывает ожидание блокировки файла
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
