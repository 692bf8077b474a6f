// erpctl cliente de línea de comandos del ERP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
	"github.com/lecoq/erp-admin/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Options{})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", erpapi.MessageOf(err, "falló el comando"))
		os.Exit(1)
	}
}
