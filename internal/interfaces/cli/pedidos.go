package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/bootstrap"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

func (c *CLI) pedidosCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "pedidos", Short: "Pedidos de clientes"}
	cmd.AddCommand(c.pedidosListarCmd(), c.pedidosVerCmd(), c.pedidosCrearCmd(), c.pedidosPDFCmd())
	return cmd
}

func (c *CLI) pedidosListarCmd() *cobra.Command {
	var q dto.ListQuery
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista pedidos (búsqueda por cliente, estado, número o id)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RoutePedidos, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			page, err := app.PedidoUC.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(page)
			}
			rows := make([][]string, 0, len(page.Items))
			for _, p := range page.Items {
				rows = append(rows, []string{i64(p.ID), p.Numero, p.Cliente, orDash(p.Fecha), p.Estado, p.Total.StringFixed(2)})
			}
			if err := c.table([]string{"ID", "NÚMERO", "CLIENTE", "FECHA", "ESTADO", "TOTAL"}, rows); err != nil {
				return err
			}
			c.pageFooter(page.Page, page.TotalPages, page.Total)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&q.Q, "buscar", "q", "", "texto a buscar")
	cmd.Flags().IntVar(&q.Page, "page", 1, "página")
	return cmd
}

func (c *CLI) pedidosVerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver <id>",
		Short: "Muestra un pedido con sus líneas",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RoutePedidos, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.PedidoUC.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(p)
			}
			c.printPedido(p)
			return nil
		}),
	}
}

func (c *CLI) printPedido(p *entity.Pedido) {
	fmt.Fprintf(c.out, "Pedido %s (id %d) - %s\n", p.Numero, p.ID, p.Estado)
	fmt.Fprintf(c.out, "Cliente: %s  RUC: %s  Tel: %s\n", p.Cliente, orDash(p.ClienteRuc), orDash(p.ClienteTelefono))
	fmt.Fprintf(c.out, "Fecha: %s  Entrega estimada: %s\n", orDash(p.Fecha), orDash(p.FechaEntregaEstimada))
	rows := make([][]string, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		rows = append(rows, []string{i64(d.ProductoID), d.ProductoNombre, i64(d.Cantidad), d.PrecioUnitario.StringFixed(2), d.Subtotal.StringFixed(2)})
	}
	_ = c.table([]string{"PRODUCTO", "NOMBRE", "CANT", "P.UNIT", "SUBTOTAL"}, rows)
	fmt.Fprintf(c.out, "Total: %s\n", p.Total.StringFixed(2))
}

func (c *CLI) pedidosCrearCmd() *cobra.Command {
	var (
		in    dto.PedidoUpsert
		total string
		items []string
	)
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea un pedido (sin --numero se genera uno temporal WEB-<ms>)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RoutePedidos, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			in.ClienteRuc = optString(cmd, "ruc")
			in.ClienteTelefono = optString(cmd, "telefono")
			in.ClienteDireccion = optString(cmd, "direccion")
			in.FechaPedido = optString(cmd, "fecha")
			in.FechaEntregaEstimada = optString(cmd, "entrega-estimada")
			in.Observaciones = optString(cmd, "obs")
			if total != "" {
				d, err := decimal.NewFromString(total)
				if err != nil {
					return domain.NewValidationError("total", "Total inválido.")
				}
				in.Total = d
			}
			detalles, err := parseItems(items)
			if err != nil {
				return err
			}
			in.Detalles = detalles

			out, err := app.PedidoUC.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "Pedido para %s creado\n", in.ClienteNombre)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.NumeroPedido, "numero", "", "número de pedido")
	cmd.Flags().StringVar(&in.ClienteNombre, "cliente", "", "nombre del cliente (obligatorio)")
	cmd.Flags().String("ruc", "", "RUC del cliente")
	cmd.Flags().String("telefono", "", "teléfono del cliente")
	cmd.Flags().String("direccion", "", "dirección del cliente")
	cmd.Flags().String("fecha", "", "fecha del pedido (YYYY-MM-DD o ISO)")
	cmd.Flags().String("entrega-estimada", "", "fecha de entrega estimada")
	cmd.Flags().StringVar(&in.Estado, "estado", "", "estado inicial (por defecto PENDIENTE)")
	cmd.Flags().StringVar(&total, "total", "", "total")
	cmd.Flags().String("obs", "", "observaciones")
	cmd.Flags().StringArrayVar(&items, "item", nil, "línea productoId:cantidad (repetible)")
	return cmd
}

// parseItems "12:3" -> {ProductoID: 12, Cantidad: 3}, en el orden recibido.
func parseItems(raw []string) ([]dto.DetalleUpsert, error) {
	out := make([]dto.DetalleUpsert, 0, len(raw))
	for _, r := range raw {
		prod, cant, ok := strings.Cut(r, ":")
		if !ok {
			return nil, domain.NewValidationError("detalles", fmt.Sprintf("Línea inválida %q: use productoId:cantidad.", r))
		}
		pid, err1 := strconv.ParseInt(strings.TrimSpace(prod), 10, 64)
		qty, err2 := strconv.ParseInt(strings.TrimSpace(cant), 10, 64)
		if err1 != nil || err2 != nil {
			return nil, domain.NewValidationError("detalles", fmt.Sprintf("Línea inválida %q: use productoId:cantidad.", r))
		}
		out = append(out, dto.DetalleUpsert{ProductoID: pid, Cantidad: qty})
	}
	return out, nil
}

func (c *CLI) pedidosPDFCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Descarga el pedido en PDF",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RoutePedidos, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			pdfBytes, filename, err := app.PedidoPDF.Download(cmd.Context(), id)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			fmt.Fprintf(c.out, "PDF guardado en %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directorio de salida")
	return cmd
}
