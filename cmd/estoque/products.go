package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

func productCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "produto",
		Usage: "cadastro e consulta de produtos",
		Subcommands: []*cli.Command{
			{
				Name:  "criar",
				Usage: "cadastra um produto",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nome", Required: true},
					&cli.StringFlag{Name: "custo", Value: "0"},
					&cli.StringFlag{Name: "venda", Value: "0"},
					&cli.Int64Flag{Name: "local"},
					&cli.Int64Flag{Name: "categoria"},
					&cli.Int64Flag{Name: "fornecedor"},
					&cli.Int64Flag{Name: "quantidade"},
					&cli.Int64Flag{Name: "minimo"},
					&cli.Int64Flag{Name: "maximo", Value: entity.DefaultMaximumStock},
				},
				Action: func(c *cli.Context) error {
					svc, err := e.open(c)
					if err != nil {
						return err
					}
					cost, err := decimal.NewFromString(c.String("custo"))
					if err != nil {
						return fmt.Errorf("custo inválido: %w", err)
					}
					sale, err := decimal.NewFromString(c.String("venda"))
					if err != nil {
						return fmt.Errorf("venda inválida: %w", err)
					}
					qty, minimum, maximum := c.Int64("quantidade"), c.Int64("minimo"), c.Int64("maximo")
					res, err := svc.CreateProduct.Create(c.Context, c.Int64("usuario"), dto.CreateProductRequest{
						Name:         c.String("nome"),
						UnitCost:     cost,
						SalePrice:    sale,
						LocationID:   c.Int64("local"),
						CategoryID:   c.Int64("categoria"),
						SupplierID:   c.Int64("fornecedor"),
						Quantity:     &qty,
						MinimumStock: &minimum,
						MaximumStock: &maximum,
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Produto %d cadastrado: %s (quantidade %d)\n",
						res.Product.ID, res.Product.Name, res.Product.Quantity)
					return nil
				},
			},
			{
				Name:  "listar",
				Usage: "lista os produtos",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 100},
					&cli.IntFlag{Name: "offset"},
				},
				Action: func(c *cli.Context) error {
					svc, err := e.open(c)
					if err != nil {
						return err
					}
					list, err := svc.Products.List(c.Context, c.Int("limit"), c.Int("offset"))
					if err != nil {
						return err
					}
					w := newTable(c.App.Writer)
					fmt.Fprintln(w, "ID\tNOME\tQTD\tMIN\tMAX\tLOCAL\tCATEGORIA\tFORNECEDOR")
					for _, p := range list.Items {
						fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
							p.ID, p.Name, p.Quantity, p.MinimumStock, p.MaximumStock, p.Location, p.Category, p.Supplier)
					}
					return w.Flush()
				},
			},
		},
	}
}

// movementCommand arma "entrada" y "saida": ambos reciben --produto y --quantidade.
func movementCommand(e *env, name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "produto", Aliases: []string{"p"}, Required: true},
			&cli.Int64Flag{Name: "quantidade", Aliases: []string{"q"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			svc, err := e.open(c)
			if err != nil {
				return err
			}
			apply := svc.Engine.ApplyEntry
			label := "Entrada registrada"
			if name == "saida" {
				apply = svc.Engine.ApplyExit
				label = "Saída registrada"
			}
			res, err := apply(c.Context, c.Int64("produto"), c.Int64("quantidade"), c.Int64("usuario"))
			if res != nil {
				printResult(c, label, res)
			}
			return err
		},
	}
}

func printResult(c *cli.Context, label string, res *inventory.MovementResult) {
	fmt.Fprintf(c.App.Writer, "%s: %s agora com %d unidades\n", label, res.Product.Name, res.Product.Quantity)
	if res.Movement == nil {
		fmt.Fprintln(c.App.Writer, "(sem usuário responsável: movimento não registrado no histórico)")
	}
	if res.Alert != nil {
		fmt.Fprintln(c.App.Writer, res.Alert.Message)
	}
}

func historyCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "movimentos",
		Usage: "histórico de movimentos de um produto em ordem cronológica",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "produto", Aliases: []string{"p"}, Required: true},
			&cli.IntFlag{Name: "limit"},
		},
		Action: func(c *cli.Context) error {
			svc, err := e.open(c)
			if err != nil {
				return err
			}
			movs, err := svc.Recorder.ListForProduct(c.Context, c.Int64("produto"), c.Int("limit"), 0)
			if err != nil {
				return err
			}
			w := newTable(c.App.Writer)
			fmt.Fprintln(w, "ID\tTIPO\tQTD\tUSUARIO\tDATA")
			for _, m := range movs {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
					m.ID, m.Kind, m.Quantity, m.UserID, m.CreatedAt.Local().Format("02/01/2006 15:04:05"))
			}
			return w.Flush()
		},
	}
}

func replenishmentCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "reposicao",
		Usage: "produtos próximos do mínimo com a quantidade sugerida de compra",
		Action: func(c *cli.Context) error {
			svc, err := e.open(c)
			if err != nil {
				return err
			}
			list, err := svc.Replenishment.GenerateReplenishmentList(c.Context)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(c.App.Writer, "Nenhum produto precisa de reposição")
				return nil
			}
			w := newTable(c.App.Writer)
			fmt.Fprintln(w, "PRIORIDADE\tID\tNOME\tATUAL\tMIN\tALVO\tSUGERIDO\tCUSTO")
			for _, s := range list {
				fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%d\t%d\t%s\n",
					s.Priority, s.ProductID, strings.TrimSpace(s.ProductName), s.CurrentStock,
					s.MinimumStock, s.TargetStock, s.SuggestedOrderQty, s.EstimatedOrderCost.StringFixed(2))
			}
			return w.Flush()
		},
	}
}
