package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/bootstrap"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

func (c *CLI) maquiladosCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "maquilados", Short: "Órdenes de maquila"}
	cmd.AddCommand(
		c.maquiladosListarCmd(),
		c.maquiladosVerCmd(),
		c.maquiladosBuscarCmd(),
		c.maquiladosCrearCmd(),
		c.maquiladosEliminarCmd(),
	)
	return cmd
}

func (c *CLI) maquiladosListarCmd() *cobra.Command {
	var q dto.ListQuery
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista órdenes (filtro por estado y búsqueda de texto)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteMaquilados, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			page, err := app.MaquiladoUC.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(page)
			}
			if err := c.maquiladosTable(page.Items); err != nil {
				return err
			}
			c.pageFooter(page.Page, page.TotalPages, page.Total)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&q.Q, "buscar", "q", "", "texto a buscar")
	cmd.Flags().StringVar(&q.Estado, "estado", "", "PENDIENTE, EN_PROCESO, FINALIZADO, RECIBIDO o CANCELADO")
	cmd.Flags().IntVar(&q.Page, "page", 1, "página")
	return cmd
}

func (c *CLI) maquiladosVerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver <id>",
		Short: "Muestra una orden",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteMaquilados, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := app.MaquiladoUC.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.showMaquilado(m)
		}),
	}
}

func (c *CLI) maquiladosBuscarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buscar <numero>",
		Short: "Busca una orden por número",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteMaquilados, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			m, err := app.MaquiladoUC.FindByNumero(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.showMaquilado(m)
		}),
	}
}

func (c *CLI) showMaquilado(m *entity.Maquilado) error {
	if c.asJSON {
		return c.printJSON(m)
	}
	return c.maquiladosTable([]entity.Maquilado{*m})
}

func (c *CLI) maquiladosCrearCmd() *cobra.Command {
	var costo string
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea una orden de maquila",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteMaquilados, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			in := dto.MaquiladoUpsert{
				NumeroOrden:          optString(cmd, "numero"),
				ProveedorNombre:      optString(cmd, "proveedor"),
				ProveedorRuc:         optString(cmd, "ruc"),
				ProveedorContacto:    optString(cmd, "contacto"),
				FechaOrden:           optString(cmd, "fecha-orden"),
				FechaEntregaEstimada: optString(cmd, "entrega-estimada"),
				Estado:               optString(cmd, "estado"),
				Observaciones:        optString(cmd, "obs"),
			}
			if costo != "" {
				d, err := decimal.NewFromString(costo)
				if err != nil {
					return domain.NewValidationError("costoTotal", "Costo total inválido.")
				}
				in.CostoTotal = decimal.NewNullDecimal(d)
			}
			out, err := app.MaquiladoUC.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "Orden %s creada\n", orDash(in.NumeroOrden))
			return nil
		}),
	}
	cmd.Flags().String("numero", "", "número de orden (obligatorio)")
	cmd.Flags().String("proveedor", "", "nombre del proveedor (obligatorio)")
	cmd.Flags().String("ruc", "", "RUC del proveedor")
	cmd.Flags().String("contacto", "", "contacto del proveedor")
	cmd.Flags().String("fecha-orden", "", "fecha de la orden")
	cmd.Flags().String("entrega-estimada", "", "fecha de entrega estimada")
	cmd.Flags().String("estado", "", "estado inicial")
	cmd.Flags().StringVar(&costo, "costo", "", "costo total")
	cmd.Flags().String("obs", "", "observaciones")
	return cmd
}

func (c *CLI) maquiladosEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una orden",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteMaquilados, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := app.MaquiladoUC.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Orden %d eliminada\n", id)
			return nil
		}),
	}
}

func (c *CLI) maquiladosTable(items []entity.Maquilado) error {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		costo := "-"
		if m.CostoTotal.Valid {
			costo = m.CostoTotal.Decimal.StringFixed(2)
		}
		rows = append(rows, []string{i64(m.ID), m.NumeroOrden, m.ProveedorNombre, orDash(m.FechaEntregaEstimada), m.Estado, costo})
	}
	return c.table([]string{"ID", "ORDEN", "PROVEEDOR", "ENTREGA EST.", "ESTADO", "COSTO"}, rows)
}
