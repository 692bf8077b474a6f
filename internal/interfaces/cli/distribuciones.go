package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/bootstrap"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

func (c *CLI) distribucionesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "distribuciones", Short: "Despachos de pedidos"}
	cmd.AddCommand(c.distribucionesListarCmd(), c.distribucionesVerCmd(), c.distribucionesCrearCmd(), c.distribucionesEliminarCmd())
	return cmd
}

func (c *CLI) distribucionesListarCmd() *cobra.Command {
	var q dto.ListQuery
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista distribuciones (búsqueda por destino, estado, pedido o id)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteDistribuciones, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			page, err := app.DistribucionUC.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(page)
			}
			if err := c.distribucionesTable(page.Items); err != nil {
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

func (c *CLI) distribucionesVerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver <id>",
		Short: "Muestra una distribución",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteDistribuciones, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := app.DistribucionUC.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(d)
			}
			return c.distribucionesTable([]entity.Distribucion{*d})
		}),
	}
}

func (c *CLI) distribucionesCrearCmd() *cobra.Command {
	var pedidoID int64
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea una distribución para un pedido",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteDistribuciones, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			in := dto.DistribucionUpsert{
				DireccionEntrega: optString(cmd, "direccion"),
				FechaSalida:      optString(cmd, "fecha-salida"),
				FechaEntrega:     optString(cmd, "fecha-entrega"),
				Estado:           optString(cmd, "estado"),
				ChoferNombre:     optString(cmd, "chofer"),
				ChoferTelefono:   optString(cmd, "chofer-telefono"),
				VehiculoPlaca:    optString(cmd, "placa"),
				VehiculoModelo:   optString(cmd, "modelo"),
				Observaciones:    optString(cmd, "obs"),
			}
			if cmd.Flags().Changed("pedido") {
				in.PedidoID = &pedidoID
			}
			out, err := app.DistribucionUC.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "Distribución del pedido %d creada\n", pedidoID)
			return nil
		}),
	}
	cmd.Flags().Int64Var(&pedidoID, "pedido", 0, "id del pedido (obligatorio)")
	cmd.Flags().String("direccion", "", "dirección de entrega")
	cmd.Flags().String("fecha-salida", "", "fecha de salida (obligatoria)")
	cmd.Flags().String("fecha-entrega", "", "fecha de entrega")
	cmd.Flags().String("estado", "", "PROGRAMADO, EN_RUTA, ENTREGADO o CANCELADO")
	cmd.Flags().String("chofer", "", "nombre del chofer")
	cmd.Flags().String("chofer-telefono", "", "teléfono del chofer")
	cmd.Flags().String("placa", "", "placa del vehículo")
	cmd.Flags().String("modelo", "", "modelo del vehículo")
	cmd.Flags().String("obs", "", "observaciones")
	return cmd
}

func (c *CLI) distribucionesEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una distribución",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteDistribuciones, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := app.DistribucionUC.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Distribución %d eliminada\n", id)
			return nil
		}),
	}
}

func (c *CLI) distribucionesTable(items []entity.Distribucion) error {
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		pedido := "-"
		if d.PedidoID != nil {
			pedido = i64(*d.PedidoID)
		}
		rows = append(rows, []string{i64(d.ID), pedido, orDash(d.Destino), orDash(d.FechaSalida), orDash(d.FechaEntrega), orDash(d.Estado), orDash(d.ChoferNombre)})
	}
	return c.table([]string{"ID", "PEDIDO", "DESTINO", "SALIDA", "ENTREGA", "ESTADO", "CHOFER"}, rows)
}
