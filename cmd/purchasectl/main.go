// Command purchasectl drives the purchase workflow against a running store:
// list the catalog, assemble a draft, and submit it.
//
// Usage:
//
//	purchasectl [-store URL] clients
//	purchasectl [-store URL] products
//	purchasectl [-store URL] purchases
//	purchasectl [-store URL] buy -client ID -item PRODUCT:QTY [-item PRODUCT:QTY ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/config"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/purchase"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"

	"github.com/joho/godotenv"
)

type itemFlag struct {
	productID uint
	quantity  int
}

type itemList []itemFlag

func (l *itemList) String() string { return fmt.Sprintf("%v", *l) }

func (l *itemList) Set(value string) error {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected PRODUCT:QTY, got %q", value)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid product id %q", parts[0])
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", parts[1])
	}
	*l = append(*l, itemFlag{productID: uint(id), quantity: qty})
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	storeURL := flag.String("store", cfg.StoreURL, "Base URL of the record store")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := store.New(*storeURL)
	switch flag.Arg(0) {
	case "clients":
		clients, err := st.ListClients(ctx)
		if err != nil {
			log.Fatalf("list clients: %v", err)
		}
		for _, c := range clients {
			fmt.Printf("%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone)
		}
	case "products":
		products, err := st.ListProducts(ctx)
		if err != nil {
			log.Fatalf("list products: %v", err)
		}
		for _, p := range products {
			fmt.Printf("%d\t%s\t%.2f\tstock=%d\n", p.ID, p.Name, p.UnitPrice, p.StockQuantity)
		}
	case "purchases":
		purchases, err := st.ListPurchases(ctx)
		if err != nil {
			log.Fatalf("list purchases: %v", err)
		}
		for _, p := range purchases {
			fmt.Printf("%d\tclient=%d\ttotal=%.2f\t%s\n", p.ID, p.ClientID, p.Total, p.CreatedAt.Format("02/01/2006"))
		}
	case "buy":
		runBuy(ctx, st, flag.Args()[1:])
	default:
		fmt.Fprintln(os.Stderr, "usage: purchasectl [-store URL] {clients|products|purchases|buy}")
		os.Exit(2)
	}
}

func runBuy(ctx context.Context, st *store.Client, args []string) {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	clientID := fs.Int("client", 0, "Client id for the purchase")
	var items itemList
	fs.Var(&items, "item", "Line item as PRODUCT:QTY (repeatable)")
	_ = fs.Parse(args)
	if len(items) == 0 {
		log.Fatal("buy: at least one -item is required")
	}

	session := purchase.NewSession(st)
	session.OnEnter(ctx)
	if msg := session.ErrorMessage(); msg != "" {
		log.Fatalf("buy: %s", msg)
	}
	session.SelectClient(uint(*clientID))
	for _, item := range items {
		session.SelectProduct(item.productID)
		if stock, ok := session.AvailableStock(); ok {
			fmt.Printf("product %d: %d in stock\n", item.productID, stock)
		}
		session.AddProduct(item.quantity)
		if msg := session.ErrorMessage(); msg != "" {
			log.Fatalf("buy: %s", msg)
		}
	}
	fmt.Printf("draft total: %.2f\n", session.Total())

	session.Submit(ctx)
	if msg := session.ErrorMessage(); msg != "" {
		log.Fatalf("buy: %s", msg)
	}
	fmt.Println(session.SuccessMessage())
}
