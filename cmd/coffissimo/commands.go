package main

import (
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"coffissimo/internal/domain/entity"
	domainerrors "coffissimo/internal/domain/errors"
	"coffissimo/internal/errors"
	"coffissimo/internal/usecase"
)

var errUsage = domainerrors.NewBaseError(domainerrors.ExitCodeInvalid, "INVALID_USAGE", "invalid usage", "")

// commandLine runs one subcommand against the usecases and writes the result to out.
type commandLine struct {
	out        io.Writer
	store      usecase.OrderStoreUsecase
	storefront usecase.StorefrontUsecase
	checkout   usecase.CheckoutUsecase
}

type command struct {
	name    string
	summary string
	run     func(cli *commandLine, ctx context.Context, args []string) error
}

func commands() []command {
	return []command{
		{"status", "Show order mode, branch and cart summary", (*commandLine).status},
		{"branches", "List branches, optionally nearest first", (*commandLine).branches},
		{"pickup", "Choose pickup, optionally selecting a branch", (*commandLine).pickup},
		{"delivery", "Choose delivery and list delivery partners", (*commandLine).delivery},
		{"start-over", "Forget the order mode, branch and cart", (*commandLine).startOver},
		{"products", "Browse the shop for the selected branch", (*commandLine).products},
		{"product", "Show one product", (*commandLine).product},
		{"notes", "List tasting notes usable as filters", (*commandLine).notes},
		{"add", "Add a product to the cart", (*commandLine).add},
		{"cart", "Show the cart", (*commandLine).cart},
		{"qty", "Change the quantity of a cart row", (*commandLine).qty},
		{"remove", "Remove a cart row", (*commandLine).remove},
		{"clear", "Empty the cart", (*commandLine).clear},
		{"slots", "List pickup times", (*commandLine).slots},
		{"checkout", "Pay and place the order", (*commandLine).placeOrder},
		{"orders", "List placed orders, newest first", (*commandLine).orders},
		{"order", "Show a receipt, optionally writing the pickup QR code", (*commandLine).order},
		{"dismiss-entry", "Stop showing the first-visit welcome", (*commandLine).dismissEntry},
	}
}

func (cli *commandLine) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(cli.out)

		return errUsage.WithDetails("missing command")
	}

	for _, cmd := range commands() {
		if cmd.name == args[0] {
			err := cmd.run(cli, ctx, args[1:])
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}

			return err
		}
	}

	printUsage(cli.out)

	return errUsage.WithDetails("unknown command " + args[0])
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)

	return fs
}

func (cli *commandLine) status(_ context.Context, args []string) error {
	if err := cli.newFlagSet("status").Parse(args); err != nil {
		return err
	}

	if cli.store.ShowEntryModal() {
		cli.printf("Welcome to Coffissimo! Choose pickup or delivery to get started.\n\n")
	}
	cli.printStatus()

	return nil
}

func (cli *commandLine) branches(_ context.Context, args []string) error {
	fs := cli.newFlagSet("branches")
	near := fs.String("near", "", "Sort by distance from lat,lng")
	openOnly := fs.Bool("open", false, "Only list branches accepting pickup orders")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *near == "" {
		list := cli.storefront.ListBranches()
		if *openOnly {
			list = cli.storefront.OpenBranches()
		}
		for _, branch := range list {
			cli.printBranch(branch, nil)
		}

		return nil
	}

	lat, lng, err := parseLatLng(*near)
	if err != nil {
		return err
	}
	for _, bd := range cli.storefront.NearestBranches(lat, lng) {
		if *openOnly && !bd.Branch.IsOpen {
			continue
		}
		cli.printBranch(bd.Branch, &bd.DistanceKm)
	}

	return nil
}

func parseLatLng(value string) (float64, float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, errUsage.WithDetails("-near expects lat,lng")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errUsage.WithDetails("invalid latitude " + parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errUsage.WithDetails("invalid longitude " + parts[1])
	}

	return lat, lng, nil
}

func (cli *commandLine) pickup(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("pickup")
	branchID := fs.String("branch", "", "Branch to collect from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *branchID == "" {
		cli.store.ChoosePickup(ctx)
		if branch := cli.store.SelectedBranch(); branch != nil {
			cli.printf("Pickup from %s\n", branch.Name)
		} else {
			cli.printf("Pickup selected. Choose a branch with: pickup -branch <id>\n")
		}

		return nil
	}

	branch, err := cli.storefront.SelectPickupBranch(ctx, *branchID)
	if err != nil {
		return err
	}
	cli.printf("Pickup from %s (%s)\n", branch.Name, branch.Address)
	if !branch.IsOpen {
		cli.printf("Note: this branch is currently closed and cannot take orders\n")
	}

	return nil
}

func (cli *commandLine) delivery(ctx context.Context, args []string) error {
	if err := cli.newFlagSet("delivery").Parse(args); err != nil {
		return err
	}

	cli.store.ChooseDelivery(ctx)
	cli.printf("Delivery is handled by our partners:\n")
	for _, branch := range cli.storefront.ListBranches() {
		cli.printDeliveryLinks(branch)
	}

	return nil
}

func (cli *commandLine) startOver(ctx context.Context, args []string) error {
	if err := cli.newFlagSet("start-over").Parse(args); err != nil {
		return err
	}

	cli.store.StartOver(ctx)
	cli.printStatus()

	return nil
}

func (cli *commandLine) products(_ context.Context, args []string) error {
	fs := cli.newFlagSet("products")
	category := fs.String("category", "", "Category to show")
	roast := fs.String("roast", "", "Roast level to show")
	notes := fs.String("notes", "", "Comma separated tasting notes, any may match")
	search := fs.String("search", "", "Search name, description, notes and origin")
	sortBy := fs.String("sort", string(usecase.SortFeatured), "featured, price_low, price_high or name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := usecase.ProductFilter{
		Category: entity.ProductCategory(*category),
		Roast:    entity.RoastLevel(*roast),
		Search:   *search,
		Sort:     usecase.ProductSort(*sortBy),
	}
	if *notes != "" {
		for _, note := range strings.Split(*notes, ",") {
			filter.TastingNotes = append(filter.TastingNotes, strings.TrimSpace(note))
		}
	}

	listings := cli.storefront.BrowseProducts(filter)
	if len(listings) == 0 {
		cli.printf("No products match\n")

		return nil
	}
	for _, listing := range listings {
		cli.printListing(listing)
	}

	return nil
}

func (cli *commandLine) product(_ context.Context, args []string) error {
	fs := cli.newFlagSet("product")
	id := fs.String("id", "", "Product ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errUsage.WithDetails("-id is required")
	}

	listing, err := cli.storefront.ProductDetail(*id)
	if err != nil {
		return err
	}
	cli.printProductDetail(*listing)

	return nil
}

func (cli *commandLine) notes(_ context.Context, args []string) error {
	if err := cli.newFlagSet("notes").Parse(args); err != nil {
		return err
	}

	for _, note := range cli.storefront.TastingNotes() {
		cli.printf("%s\n", note)
	}

	return nil
}

func (cli *commandLine) add(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("add")
	productID := fs.String("product", "", "Product ID")
	grind := fs.String("grind", "", "Grind, defaults to the product's first option")
	quantity := fs.Int("qty", 1, "Quantity")
	plan := fs.String("plan", "", "Subscription frequency: weekly, biweekly or monthly")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productID == "" {
		return errUsage.WithDetails("-product is required")
	}

	item, err := cli.storefront.AddProductToCart(ctx, usecase.AddProductInput{
		ProductID: *productID,
		Grind:     entity.GrindType(*grind),
		Quantity:  *quantity,
		Frequency: entity.SubscriptionFrequency(*plan),
	})
	if err != nil {
		return err
	}

	cli.printf("Added to cart: %s × %d (row %s)\n", item.ProductID, *quantity, item.ID)
	cli.printf("Cart: %d items, %s\n", cli.store.CartItemCount(), money(cli.store.CartTotal()))

	return nil
}

func (cli *commandLine) cart(_ context.Context, args []string) error {
	if err := cli.newFlagSet("cart").Parse(args); err != nil {
		return err
	}

	cli.store.SetIsCartOpen(true)
	cli.printCart()

	return nil
}

func (cli *commandLine) qty(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("qty")
	itemID := fs.String("item", "", "Cart row ID")
	quantity := fs.Int("n", 1, "New quantity, 0 removes the row")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *itemID == "" {
		return errUsage.WithDetails("-item is required")
	}

	cli.store.UpdateCartItemQuantity(ctx, *itemID, *quantity)
	cli.printCart()

	return nil
}

func (cli *commandLine) remove(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("remove")
	itemID := fs.String("item", "", "Cart row ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *itemID == "" {
		return errUsage.WithDetails("-item is required")
	}

	cli.store.RemoveFromCart(ctx, *itemID)
	cli.printCart()

	return nil
}

func (cli *commandLine) clear(ctx context.Context, args []string) error {
	if err := cli.newFlagSet("clear").Parse(args); err != nil {
		return err
	}

	cli.store.ClearCart(ctx)
	cli.printf("Cart cleared\n")

	return nil
}

func (cli *commandLine) slots(_ context.Context, args []string) error {
	if err := cli.newFlagSet("slots").Parse(args); err != nil {
		return err
	}

	for _, slot := range cli.checkout.PickupSlots() {
		cli.printf("%s  %s\n", slot.Value, slot.Label)
	}

	return nil
}

func (cli *commandLine) placeOrder(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("checkout")
	name := fs.String("name", "", "Name for the order")
	phone := fs.String("phone", "", "Contact phone number")
	pickupTime := fs.String("pickup", "", "Pickup time HH:MM, empty for as soon as possible")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cli.printf("Processing payment...\n")
	receipt, err := cli.checkout.Checkout(ctx, usecase.CheckoutForm{
		CustomerName:  *name,
		CustomerPhone: *phone,
		PickupTime:    *pickupTime,
	})
	if err != nil {
		return err
	}

	cli.printf("Order confirmed!\n\n")
	cli.printReceipt(receipt)

	return nil
}

func (cli *commandLine) orders(_ context.Context, args []string) error {
	if err := cli.newFlagSet("orders").Parse(args); err != nil {
		return err
	}

	history := cli.checkout.OrderHistory()
	if len(history) == 0 {
		cli.printf("No orders yet\n")

		return nil
	}
	for _, order := range history {
		cli.printOrderSummary(order)
	}

	return nil
}

func (cli *commandLine) order(_ context.Context, args []string) error {
	fs := cli.newFlagSet("order")
	id := fs.String("id", "", "Order ID")
	qrPath := fs.String("qr", "", "Write the pickup QR code PNG to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errUsage.WithDetails("-id is required")
	}

	receipt, err := cli.checkout.Receipt(*id)
	if err != nil {
		return err
	}
	cli.printReceipt(receipt)

	if *qrPath == "" {
		return nil
	}

	png, err := cli.checkout.PickupQRCode(*id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*qrPath, png, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", *qrPath)
	}
	cli.printf("\nPickup QR code written to %s\n", *qrPath)

	return nil
}

func (cli *commandLine) dismissEntry(ctx context.Context, args []string) error {
	if err := cli.newFlagSet("dismiss-entry").Parse(args); err != nil {
		return err
	}

	cli.store.SetShowEntryModal(ctx, false)

	return nil
}
