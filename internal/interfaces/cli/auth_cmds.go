package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/pkg/jwt"
)

func (c *CLI) loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión y guarda el token localmente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.load()
			if err != nil {
				return err
			}
			if username == "" {
				if username, err = c.readLine("Usuario: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = c.readPassword("Contraseña: "); err != nil {
					return err
				}
			}
			username = strings.TrimSpace(username)
			if username == "" || password == "" {
				return domain.NewValidationError("username", "Usuario y contraseña son obligatorios.")
			}

			res, err := app.AuthUC.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(map[string]any{"role": res.Role, "user": res.User})
			}
			fmt.Fprintf(c.out, "Sesión iniciada como %s (rol %s)\n", username, res.Role)
			for _, it := range access.MenuFor(res.Role) {
				fmt.Fprintf(c.out, "  %-16s %s\n", it.To, it.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si falta se lee de la entrada)")
	return cmd
}

func (c *CLI) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión (aunque el backend no responda)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.load()
			if err != nil {
				return err
			}
			if err := app.AuthUC.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Sesión cerrada")
			return nil
		},
	}
}

func (c *CLI) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la sesión guardada",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := c.load()
			if err != nil {
				return err
			}
			st := app.Session.State()
			if !access.Authenticated(st) {
				return fmt.Errorf("%w: ejecute 'erpctl login'", domain.ErrNoSession)
			}
			info, _ := jwt.Inspect(st.Token)
			if c.asJSON {
				out := map[string]any{"role": st.Role, "user": st.User, "backend": app.Client.BaseURL()}
				if info != nil {
					out["subject"] = info.Subject
					out["expired"] = info.Expired(time.Now())
				}
				return c.printJSON(out)
			}
			fmt.Fprintf(c.out, "backend: %s\n", app.Client.BaseURL())
			fmt.Fprintf(c.out, "rol:     %s\n", st.Role)
			if info != nil {
				fmt.Fprintf(c.out, "usuario: %s\n", info.Subject)
				if !info.ExpiresAt.IsZero() {
					estado := "vigente"
					if info.Expired(time.Now()) {
						estado = "vencido"
					}
					fmt.Fprintf(c.out, "vence:   %s (%s)\n", info.ExpiresAt.Local().Format(time.DateTime), estado)
				}
			}
			return nil
		},
	}
}

func (c *CLI) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Pregunta al backend si el token guardado sigue siendo válido",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.load()
			if err != nil {
				return err
			}
			out, err := app.AuthUC.Validate(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(out)
		},
	}
}
