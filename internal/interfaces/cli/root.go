// Package cli comandos de erpctl: la misma biblioteca que usa la consola, desde la terminal.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/bootstrap"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/pkg/config"
	"github.com/lecoq/erp-admin/pkg/logger"
)

// Builder construye las dependencias a partir de la ruta de --config ("" = solo env).
type Builder func(configPath string) (*bootstrap.App, error)

// Options entrada/salida y construcción de dependencias del CLI.
type Options struct {
	Out   io.Writer
	In    io.Reader
	Build Builder
}

// CLI estado compartido por los comandos de una ejecución.
type CLI struct {
	out   io.Writer
	rawIn io.Reader
	in    *bufio.Reader
	build Builder

	configPath string
	asJSON     bool
	app        *bootstrap.App
}

// DefaultBuilder lee la configuración con viper y arma el grafo completo.
// Los logs van a stderr para no mezclarse con la salida del comando.
func DefaultBuilder(configPath string) (*bootstrap.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})
	return bootstrap.New(cfg, log)
}

// NewRootCommand arma el árbol de comandos de erpctl.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Build == nil {
		opts.Build = DefaultBuilder
	}
	c := &CLI{out: opts.Out, rawIn: opts.In, in: bufio.NewReader(opts.In), build: opts.Build}

	root := &cobra.Command{
		Use:           "erpctl",
		Short:         "Cliente de línea de comandos del ERP",
		Long:          "erpctl consume el backend REST del ERP con la sesión guardada localmente (erpctl login).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "archivo de configuración (env, yaml o json)")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "salida en JSON")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.validateCmd(),
		c.productosCmd(),
		c.pedidosCmd(),
		c.distribucionesCmd(),
		c.maquiladosCmd(),
		c.usuariosCmd(),
	)
	return root
}

// load construye las dependencias una sola vez por ejecución.
func (c *CLI) load() (*bootstrap.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	app, err := c.build(c.configPath)
	if err != nil {
		return nil, err
	}
	c.app = app
	return app, nil
}

// guarded envuelve fn con la misma regla de acceso de la consola para route:
// sin sesión o con un rol sin acceso devuelve error en vez de redirigir.
func (c *CLI) guarded(route string, fn func(cmd *cobra.Command, app *bootstrap.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := c.load()
		if err != nil {
			return err
		}
		st := app.Session.State()
		switch access.Check(st, route) {
		case access.RedirectLogin:
			return fmt.Errorf("%w: ejecute 'erpctl login'", domain.ErrNoSession)
		case access.RedirectHome:
			return fmt.Errorf("%w: el rol %s no tiene acceso a %s", domain.ErrForbidden, st.Role, route)
		}
		return fn(cmd, app, args)
	}
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table imprime filas alineadas por tabuladores.
func (c *CLI) table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	return w.Flush()
}

// pageFooter línea "página X de Y (N resultados)".
func (c *CLI) pageFooter(page, totalPages, total int) {
	fmt.Fprintf(c.out, "página %d de %d (%d resultados)\n", page, totalPages, total)
}

func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readPassword lee sin eco cuando la entrada es una terminal; con entrada redirigida
// (pipes, tests) lee la línea igual que readLine.
func (c *CLI) readPassword(prompt string) (string, error) {
	f, ok := c.rawIn.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.readLine(prompt)
	}
	fmt.Fprint(c.out, prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, arg)
	}
	return id, nil
}

// optString nil si el flag no se indicó.
func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func i64(n int64) string { return strconv.FormatInt(n, 10) }
