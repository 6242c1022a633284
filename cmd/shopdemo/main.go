package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cart "github.com/dwikikusuma/shopcart/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopcart/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/shopcart/internal/checkout/app"
	pricing "github.com/dwikikusuma/shopcart/internal/pricing/domain"
	user "github.com/dwikikusuma/shopcart/internal/user/domain"

	"github.com/dwikikusuma/shopcart/pkg/config"
	"github.com/dwikikusuma/shopcart/pkg/logger"
	"github.com/dwikikusuma/shopcart/pkg/money"
	"github.com/dwikikusuma/shopcart/pkg/shutdown"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "shopdemo", Env: cfg.AppEnv, Level: cfg.LogLevel, Output: os.Stderr})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdout, cfg, log); err != nil {
		log.Error("demo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, cfg config.Config, log *slog.Logger) error {
	mf, err := money.NewFormatter(cfg.DisplayLocale)
	if err != nil {
		return err
	}

	ebook := catalog.NewDigitalProduct("1", "E-Book", 15.0, 10, "ebook.com")
	course := catalog.NewDigitalProduct("2", "Online Course", 50.0, 1024, "course.com")
	laptop := catalog.NewPhysicalProduct("3", "Laptop", 1000.0, 2.5, catalog.Dimensions{Length: 15, Width: 10, Height: 1}, 20.0)
	chair := catalog.NewPhysicalProduct("4", "Chair", 150.0, 10.0, catalog.Dimensions{Length: 30, Width: 30, Height: 40}, 50.0)
	desk := catalog.NewPhysicalProduct("5", "Desk", 250.0, 15.0, catalog.Dimensions{Length: 50, Width: 30, Height: 50}, 75.0)

	alice := user.NewUser(uuid.NewString(), "Alice")
	bob := user.NewUser(uuid.NewString(), "Bob")

	alice.AddToCart(ebook)
	alice.AddToCart(course)
	bob.AddToCart(laptop)
	bob.AddToCart(chair)
	bob.AddToCart(desk)

	fmt.Fprintf(out, "Alice's Cart: %s\n", describe(alice.Cart().View(), mf))
	fmt.Fprintf(out, "Bob's Cart: %s\n", describe(bob.Cart().View(), mf))

	tenPercent := pricing.NewPercentageDiscount(10)
	hundredOff := pricing.NewFixedAmountDiscount(100)

	fmt.Fprintf(out, "Alice's Total Before Discount: %s\n", mf.Format(alice.Cart().Total()))
	fmt.Fprintf(out, "Alice's Total After 10%% Discount: %s\n", mf.Format(alice.Cart().Total(tenPercent)))
	fmt.Fprintf(out, "Bob's Total Before Discount: %s\n", mf.Format(bob.Cart().Total()))
	fmt.Fprintf(out, "Bob's Total After $100 Discount: %s\n", mf.Format(bob.Cart().Total(hundredOff)))

	svc := checkoutapp.NewService(log, cfg.CheckoutMaxConcurrent)
	receipts, err := svc.CheckoutAll(ctx, []*user.User{alice, bob})
	for _, r := range receipts {
		if r.ID == "" {
			continue
		}
		fmt.Fprintf(out, "%s checked out %d item(s) for %s (receipt %s)\n", r.UserName, len(r.Items), mf.Format(r.Total), r.ID)
	}
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	fmt.Fprintf(out, "Alice's Cart: %s\n", describe(alice.Cart().View(), mf))
	fmt.Fprintf(out, "Bob's Cart: %s\n", describe(bob.Cart().View(), mf))

	return nil
}

func describe(lines []cart.LineItem, mf *money.Formatter) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s %s x%d @ %s", l.ProductID, l.Name, l.Quantity, mf.Format(l.Price)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
