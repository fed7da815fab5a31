// Command estoque opera el mismo almacén que la API desde la terminal:
// migraciones, alta de productos, entradas, saídas e histórico.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/controle-estoque/internal/bootstrap"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env estado compartido por los comandos, armado en Before.
type env struct {
	cfg   *config.Config
	log   *logger.Logger
	repos *bootstrap.Repositories
	svc   *bootstrap.Services
}

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "estoque",
		Usage: "controle de estoque pela linha de comando",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "usuario",
				Aliases: []string{"u"},
				Usage:   "id do usuário responsável pelos movimentos (0 = nenhum)",
				EnvVars: []string{"ESTOQUE_USUARIO"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{
				Env:     cfg.App.Env,
				Level:   cfg.App.LogLevel,
				Service: "estoque-cli",
				Output:  os.Stderr,
			})
			return nil
		},
		After: func(c *cli.Context) error {
			if e.repos != nil {
				e.repos.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			migrateCommand(e),
			productCommand(e),
			movementCommand(e, "entrada", "registra uma entrada de estoque"),
			movementCommand(e, "saida", "registra uma saída de estoque"),
			historyCommand(e),
			replenishmentCommand(e),
			userCommand(e),
			catalogCommand(e, "categoria"),
			catalogCommand(e, "local"),
			catalogCommand(e, "fornecedor"),
		},
	}
}

// open abre el almacén y los casos de uso una sola vez por ejecución.
func (e *env) open(c *cli.Context) (*bootstrap.Services, error) {
	if e.svc != nil {
		return e.svc, nil
	}
	repos, err := bootstrap.OpenRepositories(c.Context, e.cfg, e.log)
	if err != nil {
		return nil, err
	}
	e.repos = repos
	e.svc = bootstrap.NewServices(repos, e.cfg, e.log)
	return e.svc, nil
}

func migrateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica (ou reverte com --down) as migrações do PostgreSQL",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "down", Usage: "reverte todas as migrações"},
		},
		Action: func(c *cli.Context) error {
			if e.cfg.Store.Driver != config.StoreDriverPostgres {
				return fmt.Errorf("migrate exige STORE_DRIVER=%s", config.StoreDriverPostgres)
			}
			if err := postgres.Migrate(e.cfg.DB.ConnectionString(), c.Bool("down")); err != nil {
				return err
			}
			e.log.Info().Bool("down", c.Bool("down")).Msg("migrações concluídas")
			return nil
		},
	}
}
