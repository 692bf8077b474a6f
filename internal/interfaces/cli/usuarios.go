package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/bootstrap"
)

func (c *CLI) usuariosCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "usuarios", Short: "Usuarios del ERP (solo ADMIN)"}
	cmd.AddCommand(c.usuariosListarCmd(), c.usuariosCrearCmd())
	return cmd
}

func (c *CLI) usuariosListarCmd() *cobra.Command {
	var q dto.ListQuery
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista usuarios",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteUsuarios, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			page, err := app.UsuarioUC.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(page)
			}
			rows := make([][]string, 0, len(page.Items))
			for _, u := range page.Items {
				rows = append(rows, []string{i64(u.ID), u.Username, orDash(u.Email), u.Rol, u.Estado})
			}
			if err := c.table([]string{"ID", "USUARIO", "EMAIL", "ROL", "ESTADO"}, rows); err != nil {
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

func (c *CLI) usuariosCrearCmd() *cobra.Command {
	var in dto.UsuarioCreate
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crea un usuario",
		Args:  cobra.NoArgs,
		RunE: c.guarded(access.RouteUsuarios, func(cmd *cobra.Command, app *bootstrap.App, _ []string) error {
			in.Email = optString(cmd, "email")
			out, err := app.UsuarioUC.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "Usuario %s creado\n", in.Username)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "usuario (obligatorio)")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña, mínimo 6 caracteres")
	cmd.Flags().StringVar(&in.Rol, "rol", "VENTAS", "ADMIN, VENTAS o MAQUILA")
	cmd.Flags().String("email", "", "email")
	return cmd
}
