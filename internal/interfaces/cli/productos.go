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

func (c *CLI) productosCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "productos", Short: "Catálogo de productos"}
	cmd.AddCommand(
		c.productosListarCmd(),
		c.productosVerCmd(),
		c.productosBajoStockCmd(),
		c.productoUpsertCmd("crear", "Crea un producto"),
		c.productoUpsertCmd("editar <id>", "Actualiza un producto"),
		c.productosEliminarCmd(),
	)
	return cmd
}

func (c *CLI) productosListarCmd() *cobra.Command {
	var q dto.ListQuery
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista productos (búsqueda sin acentos, 8 por página)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteProductos, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			page, err := app.ProductoUC.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(page)
			}
			if err := c.productosTable(page.Items); err != nil {
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

func (c *CLI) productosBajoStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bajo-stock",
		Short: "Productos con stock bajo (5 o menos)",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteProductos, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			items, err := app.ProductoUC.LowStock(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(items)
			}
			return c.productosTable(items)
		}),
	}
}

func (c *CLI) productosVerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ver <id>",
		Short: "Muestra un producto",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteProductos, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.ProductoUC.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(p)
			}
			return c.productosTable([]entity.Producto{*p})
		}),
	}
}

func (c *CLI) productoUpsertCmd(use, short string) *cobra.Command {
	var (
		in     dto.ProductoUpsert
		precio string
		activo bool
	)
	editing := use != "crear"
	args := cobra.NoArgs
	if editing {
		args = cobra.ExactArgs(1)
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: c.guarded(access.RouteProductos, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			if precio != "" {
				d, err := decimal.NewFromString(precio)
				if err != nil {
					return domain.NewValidationError("precio", "Precio inválido.")
				}
				in.Precio = d
			}
			in.Descripcion = optString(cmd, "descripcion")
			in.Presentacion = optString(cmd, "presentacion")
			if cmd.Flags().Changed("activo") {
				in.Activo = &activo
			}

			var (
				out any
				err error
			)
			if editing {
				id, perr := parseID(args[0])
				if perr != nil {
					return perr
				}
				out, err = app.ProductoUC.Update(cmd.Context(), id, in)
			} else {
				out, err = app.ProductoUC.Create(cmd.Context(), in)
			}
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "Producto %s guardado\n", in.Nombre)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Nombre, "nombre", "", "nombre (obligatorio)")
	cmd.Flags().String("descripcion", "", "descripción")
	cmd.Flags().String("presentacion", "", "presentación")
	cmd.Flags().Int64Var(&in.Stock, "stock", 0, "stock")
	cmd.Flags().StringVar(&precio, "precio", "0", "precio")
	cmd.Flags().BoolVar(&activo, "activo", true, "activo")
	return cmd
}

func (c *CLI) productosEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un producto",
		Args:  cobra.ExactArgs(1),
		RunE: c.guarded(access.RouteProductos, func(cmd *cobra.Command, app *bootstrap.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := app.ProductoUC.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Producto %d eliminado\n", id)
			return nil
		}),
	}
}

func (c *CLI) productosTable(items []entity.Producto) error {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{i64(p.ID), p.Nombre, i64(p.Stock), string(p.StockLevel()), p.Precio.StringFixed(2), p.Estado})
	}
	return c.table([]string{"ID", "NOMBRE", "STOCK", "NIVEL", "PRECIO", "ESTADO"}, rows)
}
