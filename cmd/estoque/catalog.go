package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func userCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "usuario",
		Usage: "cadastro e consulta de usuários",
		Subcommands: []*cli.Command{
			{
				Name:  "criar",
				Usage: "cadastra um usuário",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nome", Required: true},
					&cli.StringFlag{Name: "senha", Required: true, EnvVars: []string{"ESTOQUE_SENHA"}},
					&cli.BoolFlag{Name: "admin"},
				},
				Action: func(c *cli.Context) error {
					svc, err := e.open(c)
					if err != nil {
						return err
					}
					role := entity.RoleOperator
					if c.Bool("admin") {
						role = entity.RoleAdmin
					}
					u, err := svc.Auth.RegisterUser(c.Context, dto.RegisterRequest{
						Username: c.String("nome"),
						Password: c.String("senha"),
						Role:     role,
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Usuário %d cadastrado: %s\n", u.ID, u.Username)
					return nil
				},
			},
			{
				Name:  "listar",
				Usage: "lista os usuários",
				Action: func(c *cli.Context) error {
					svc, err := e.open(c)
					if err != nil {
						return err
					}
					users, err := svc.Users.List(c.Context)
					if err != nil {
						return err
					}
					w := newTable(c.App.Writer)
					fmt.Fprintln(w, "ID\tNOME\tTIPO")
					for _, u := range users {
						fmt.Fprintf(w, "%d\t%s\t%d\n", u.ID, u.Username, u.Role)
					}
					return w.Flush()
				},
			},
		},
	}
}

// catalogEntry fila neutra para imprimir categorías, locais y fornecedores.
type catalogEntry struct {
	ID   int64
	Name string
}

// catalogCommand arma "categoria", "local" o "fornecedor" con criar y listar.
func catalogCommand(e *env, kind string) *cli.Command {
	create := func(c *cli.Context, name string) (int64, error) {
		svc, err := e.open(c)
		if err != nil {
			return 0, err
		}
		switch kind {
		case "categoria":
			r, err := svc.Catalog.CreateCategory(c.Context, dto.CreateCategoryRequest{Name: name})
			if err != nil {
				return 0, err
			}
			return r.ID, nil
		case "local":
			r, err := svc.Catalog.CreateLocation(c.Context, dto.CreateLocationRequest{Name: name})
			if err != nil {
				return 0, err
			}
			return r.ID, nil
		default:
			r, err := svc.Catalog.CreateSupplier(c.Context, dto.CreateSupplierRequest{Name: name})
			if err != nil {
				return 0, err
			}
			return r.ID, nil
		}
	}
	list := func(c *cli.Context) ([]catalogEntry, error) {
		svc, err := e.open(c)
		if err != nil {
			return nil, err
		}
		var out []catalogEntry
		switch kind {
		case "categoria":
			rows, err := svc.Catalog.ListCategories(c.Context)
			if err != nil {
				return nil, err
			}
			for _, r := range rows {
				out = append(out, catalogEntry{r.ID, r.Name})
			}
		case "local":
			rows, err := svc.Catalog.ListLocations(c.Context)
			if err != nil {
				return nil, err
			}
			for _, r := range rows {
				out = append(out, catalogEntry{r.ID, r.Name})
			}
		default:
			rows, err := svc.Catalog.ListSuppliers(c.Context)
			if err != nil {
				return nil, err
			}
			for _, r := range rows {
				out = append(out, catalogEntry{r.ID, r.Name})
			}
		}
		return out, nil
	}

	return &cli.Command{
		Name:  kind,
		Usage: "cadastro de " + kind,
		Subcommands: []*cli.Command{
			{
				Name:      "criar",
				ArgsUsage: "<nome>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("informe o nome", 2)
					}
					id, err := create(c, c.Args().First())
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s %d cadastrado\n", kind, id)
					return nil
				},
			},
			{
				Name: "listar",
				Action: func(c *cli.Context) error {
					rows, err := list(c)
					if err != nil {
						return err
					}
					w := newTable(c.App.Writer)
					fmt.Fprintln(w, "ID\tNOME")
					for _, r := range rows {
						fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
					}
					return w.Flush()
				},
			},
		},
	}
}
