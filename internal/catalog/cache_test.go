package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

// fakeStore serves /clients and /products; set failing to make every
// request answer 500.
type fakeStore struct {
	clients  string
	products string
	failing  atomic.Bool
}

func (f *fakeStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, f.clients)
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, f.products)
	})
	return mux
}

func (f *fakeStore) serve(w http.ResponseWriter, body string) {
	if f.failing.Load() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		_ = err
	}
}

func TestRefreshProductsReplacesSnapshot(t *testing.T) {
	fake := &fakeStore{
		clients:  `[]`,
		products: `[{"id":1,"name":"P1","unitPrice":10,"stockQuantity":5}]`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	cache := New(store.New(srv.URL))
	if _, err := cache.RefreshProducts(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	stock, err := cache.AvailableStock(1)
	if err != nil {
		t.Fatalf("stock: %v", err)
	}
	if stock != 5 {
		t.Fatalf("stock = %d, want 5", stock)
	}

	fake.products = `[{"id":1,"name":"P1","unitPrice":10,"stockQuantity":2}]`
	if _, err := cache.RefreshProducts(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if stock, _ := cache.AvailableStock(1); stock != 2 {
		t.Fatalf("stock after refresh = %d, want 2", stock)
	}
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	fake := &fakeStore{
		clients:  `[{"id":1,"name":"C1","email":"c1@x.com","phone":""}]`,
		products: `[{"id":1,"name":"P1","unitPrice":10,"stockQuantity":5}]`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	cache := New(store.New(srv.URL))
	if _, err := cache.RefreshClients(context.Background()); err != nil {
		t.Fatalf("refresh clients: %v", err)
	}
	if _, err := cache.RefreshProducts(context.Background()); err != nil {
		t.Fatalf("refresh products: %v", err)
	}

	fake.failing.Store(true)
	if _, err := cache.RefreshClients(context.Background()); err == nil {
		t.Fatal("expected refresh to fail")
	}
	if _, err := cache.RefreshProducts(context.Background()); err == nil {
		t.Fatal("expected refresh to fail")
	}

	if got := len(cache.Clients()); got != 1 {
		t.Fatalf("client snapshot lost on failed refresh: %d entries", got)
	}
	if stock, err := cache.AvailableStock(1); err != nil || stock != 5 {
		t.Fatalf("product snapshot lost on failed refresh: stock=%d err=%v", stock, err)
	}
}

func TestAvailableStockUnknownProduct(t *testing.T) {
	cache := New(store.New("http://127.0.0.1:0"))
	if _, err := cache.AvailableStock(42); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestLookupAccessors(t *testing.T) {
	fake := &fakeStore{
		clients:  `[{"id":3,"name":"C3","email":"c3@x.com","phone":"123"}]`,
		products: `[{"id":7,"name":"P7","unitPrice":1.5,"stockQuantity":4}]`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	cache := New(store.New(srv.URL))
	if _, err := cache.RefreshClients(context.Background()); err != nil {
		t.Fatalf("refresh clients: %v", err)
	}
	if _, err := cache.RefreshProducts(context.Background()); err != nil {
		t.Fatalf("refresh products: %v", err)
	}

	if c, ok := cache.Client(3); !ok || c.Name != "C3" {
		t.Fatalf("client lookup: ok=%v c=%+v", ok, c)
	}
	if _, ok := cache.Client(4); ok {
		t.Fatal("unexpected client 4")
	}
	if p, ok := cache.Product(7); !ok || p.UnitPrice != 1.5 {
		t.Fatalf("product lookup: ok=%v p=%+v", ok, p)
	}
}
