package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/queries/list_products"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/apply_coupon"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/checkout"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/cart-service/internal/config"
	"github.com/light-bringer/cart-service/internal/services"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "browse the catalog, manage the cart, and check out",
		Commands: []*cli.Command{
			productsCommand(),
			addCommand(),
			removeCommand(),
			cartCommand(),
			couponCommand(),
			checkoutCommand(),
			resetCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config, configures logging, wires the service container,
// and hydrates the cart from the persisted snapshot.
func setup(ctx context.Context) (*services.ServiceOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}
	logger.SetLevel(level)

	opts, err := services.NewServiceOptions(cfg, logger, os.Stdout)
	if err != nil {
		return nil, err
	}

	opts.Store.Hydrate(ctx)
	return opts, nil
}

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list catalog products",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "website or app"},
			&cli.Int64Flag{Name: "max-price", Usage: "price ceiling in whole dollars"},
			&cli.StringFlag{Name: "search", Usage: "title substring match"},
			&cli.StringFlag{Name: "sort", Usage: "price_asc or price_desc"},
		},
		Action: func(c *cli.Context) error {
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			filter := &contracts.ProductFilter{
				Category:      c.String("category"),
				MaxPriceCents: c.Int64("max-price") * 100,
				Search:        c.String("search"),
				Sort:          c.String("sort"),
			}
			if s := filter.Sort; s != "" && s != list_products.SortPriceAsc && s != list_products.SortPriceDesc {
				return errors.Errorf("unknown sort %q", s)
			}

			for _, p := range opts.ListProducts.Execute(c.Context, filter) {
				fmt.Printf("%-24s %-8s $%-10s %s\n", p.ProductID, p.Category, p.Price, p.Title)
			}
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add a product to the cart",
		ArgsUsage: "<product-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one product id")
			}
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			line, err := opts.AddItem.Execute(c.Context, &add_item.Request{ProductID: c.Args().First()})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s ($%s) as line %s\n", line.Title, line.Price, line.ID)
			return nil
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "remove a cart line by its id",
		ArgsUsage: "<line-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one line id")
			}
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			if opts.RemoveItem.Execute(c.Context, &remove_item.Request{LineID: c.Args().First()}) {
				fmt.Println("Removed")
			} else {
				fmt.Println("No such line")
			}
			return nil
		},
	}
}

func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "show the cart contents and totals",
		Action: func(c *cli.Context) error {
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			view := opts.ViewCart.Execute(c.Context)
			if len(view.Lines) == 0 {
				fmt.Println("Your cart is empty")
				return nil
			}

			for _, line := range view.Lines {
				fmt.Printf("%s  %-28s $%s\n", line.LineID, line.Title, line.Price)
			}
			fmt.Printf("Subtotal: $%s\n", view.Subtotal)
			if view.DiscountPercent > 0 {
				fmt.Printf("Discount: %d%% (-$%s)\n", view.DiscountPercent, view.DiscountAmount)
			}
			fmt.Printf("Total:    $%s\n", view.Total)
			if view.Degraded {
				fmt.Println("(cart is not being saved: persistence unavailable)")
			}
			return nil
		},
	}
}

func couponCommand() *cli.Command {
	return &cli.Command{
		Name:      "coupon",
		Usage:     "apply a discount code",
		ArgsUsage: "<code>",
		Action: func(c *cli.Context) error {
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			percent, err := opts.ApplyCoupon.Execute(c.Context, &apply_coupon.Request{Code: c.Args().First()})
			if err != nil {
				return err
			}
			fmt.Printf("%d%% discount applied\n", percent)
			return nil
		},
	}
}

func checkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "place the order and hand it to the messaging channel",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "customer name"},
			&cli.StringFlag{Name: "email", Usage: "customer email"},
			&cli.StringFlag{Name: "phone", Usage: "customer phone"},
		},
		Action: func(c *cli.Context) error {
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			summary, err := opts.Checkout.Execute(c.Context, &checkout.Request{
				Name:  c.String("name"),
				Email: c.String("email"),
				Phone: c.String("phone"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Order placed: %d item(s), total $%s\n", len(summary.Items), summary.Total)
			opts.Checkout.Wait()
			fmt.Println("Cart cleared")
			return nil
		},
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "empty the cart and delete the saved snapshot",
		Action: func(c *cli.Context) error {
			opts, err := setup(c.Context)
			if err != nil {
				return err
			}

			opts.ClearCart.Execute(c.Context)
			fmt.Println("Cart reset")
			return nil
		},
	}
}
