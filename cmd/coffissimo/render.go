package main

import (
	"fmt"
	"io"
	"strings"

	"coffissimo/internal/domain/entity"
	"coffissimo/internal/usecase"

	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04"

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func (cli *commandLine) printf(format string, args ...any) {
	fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) productName(productID string) string {
	listing, err := cli.storefront.ProductDetail(productID)
	if err != nil {
		return productID
	}

	return listing.Product.Name
}

func (cli *commandLine) printStatus() {
	cli.printf("Mode:   %s\n", cli.store.Selection())
	if branch := cli.store.SelectedBranch(); branch != nil {
		cli.printf("Branch: %s (%s)\n", branch.Name, branch.ID)
	}
	cli.printf("Cart:   %d items, %s\n", cli.store.CartItemCount(), money(cli.store.CartTotal()))
	cli.printf("Orders: %d\n", len(cli.store.Orders()))
}

func (cli *commandLine) printBranch(branch entity.Branch, distanceKm *float64) {
	state := "open"
	if !branch.IsOpen {
		state = "closed"
	}

	cli.printf("%-18s %-22s %-6s %s-%s %s", branch.ID, branch.Name, state, branch.Hours.Open, branch.Hours.Close, branch.Hours.Days)
	if distanceKm != nil {
		cli.printf("  %.1f km", *distanceKm)
	}
	cli.printf("\n")

	for _, offer := range branch.Offers {
		line := "    offer: " + offer.Title
		if offer.Discount != nil {
			line += fmt.Sprintf(" (%d%% off)", *offer.Discount)
		}
		if offer.Code != "" {
			line += " code " + offer.Code
		}
		cli.printf("%s\n", line)
	}
}

func (cli *commandLine) printDeliveryLinks(branch entity.Branch) {
	links := []string{}
	if branch.DeliveryLinks.UberEats != "" {
		links = append(links, "Uber Eats "+branch.DeliveryLinks.UberEats)
	}
	if branch.DeliveryLinks.DoorDash != "" {
		links = append(links, "DoorDash "+branch.DeliveryLinks.DoorDash)
	}
	if len(links) == 0 {
		return
	}

	cli.printf("  %s\n", branch.Name)
	for _, link := range links {
		cli.printf("    %s\n", link)
	}
}

func (cli *commandLine) printListing(listing usecase.ProductListing) {
	price := "-"
	flags := ""
	if bp := listing.BranchProduct; bp != nil {
		price = money(bp.Price)
		if bp.Featured {
			flags += " *featured*"
		}
		switch bp.Availability {
		case entity.LowStock:
			flags += " low stock"
		case entity.OutOfStock:
			flags += " sold out"
		}
	}

	cli.printf("%-22s %-24s %-12s %8s%s\n",
		listing.Product.ID, listing.Product.Name, listing.Product.RoastLevel, price, flags)
}

func (cli *commandLine) printProductDetail(listing usecase.ProductListing) {
	product := listing.Product

	cli.printf("%s (%s)\n", product.Name, product.Weight)
	cli.printf("%s\n\n", product.Description)
	cli.printf("Origin:  %s\n", product.Origin)
	cli.printf("Roast:   %s\n", product.RoastLevel)
	if len(product.TastingNotes) > 0 {
		cli.printf("Notes:   %s\n", strings.Join(product.TastingNotes, ", "))
	}
	grinds := make([]string, 0, len(product.GrindOptions))
	for _, grind := range product.GrindOptions {
		grinds = append(grinds, string(grind))
	}
	cli.printf("Grinds:  %s\n", strings.Join(grinds, ", "))
	if product.IsSubscribable {
		cli.printf("Subscribe weekly, biweekly or monthly and save\n")
	}

	if listing.BranchProduct == nil {
		cli.printf("Price:   select a pickup branch to see prices\n")

		return
	}
	cli.printf("Price:   %s (%s)\n", money(listing.BranchProduct.Price), listing.BranchProduct.Availability)
}

func (cli *commandLine) printCart() {
	items := cli.store.Cart()
	if len(items) == 0 {
		cli.printf("Your cart is empty\n")

		return
	}

	for _, item := range items {
		plan := "one-time"
		if item.SubscriptionPlan != nil {
			plan = fmt.Sprintf("%s -%s%%", item.SubscriptionPlan.Frequency, item.SubscriptionPlan.Discount)
		}
		cli.printf("%s  %-24s %-12s %-16s %3d × %s = %s\n",
			item.ID, cli.productName(item.ProductID), item.Grind, plan,
			item.Quantity, money(item.UnitPrice), money(item.LineTotal()))
	}
	cli.printf("Total: %s (%d items)\n", money(cli.store.CartTotal()), cli.store.CartItemCount())
}

func (cli *commandLine) printReceipt(receipt *usecase.Receipt) {
	order := receipt.Order

	cli.printf("Order %s  (id %s)\n", order.OrderNumber, order.ID)
	cli.printf("Placed %s, status %s\n", order.CreatedAt.Local().Format(timeLayout), order.Status)
	if receipt.Branch != nil {
		cli.printf("Pickup at %s, %s\n", receipt.Branch.Name, receipt.Branch.Address)
	}
	if order.PickupTime != nil {
		cli.printf("Pickup time %s\n", *order.PickupTime)
	} else {
		cli.printf("Pickup as soon as possible\n")
	}
	cli.printf("For %s, %s\n\n", order.CustomerName, order.CustomerPhone)

	for _, line := range receipt.Lines {
		cli.printf("  %-24s %-16s %3d  %s\n", line.ProductName, line.GrindName, line.Item.Quantity, money(line.LineTotal))
	}
	cli.printf("\n  Subtotal %s\n", money(receipt.Subtotal))
	cli.printf("  Tax      %s\n", money(receipt.Tax))
	cli.printf("  Total    %s\n", money(receipt.Total))
}

func (cli *commandLine) printOrderSummary(order entity.Order) {
	cli.printf("%s  %s  %s  %d items  %s\n",
		order.OrderNumber, order.CreatedAt.Local().Format(timeLayout), order.BranchID, order.ItemCount(), money(order.Total))
	cli.printf("    id %s\n", order.ID)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: coffissimo <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-14s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use 'coffissimo <command> -h' for more information about a command.")
}
