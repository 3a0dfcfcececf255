package purchase

import (
	"context"
	"errors"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/catalog"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

// Session is the page-level facade over the purchase workflow. Every
// operation folds its outcome into a single user-visible message pair: one
// error and one success slot, mutually exclusive, replaced on the next
// action. Errors never propagate past this boundary.
type Session struct {
	store     *store.Client
	catalog   *catalog.Cache
	builder   *Builder
	submitter *Submitter

	purchases []store.PurchaseRecord

	selectedProduct uint
	availableStock  int
	stockKnown      bool

	errMsg string
	okMsg  string
}

func NewSession(st *store.Client) *Session {
	cat := catalog.New(st)
	return &Session{
		store:     st,
		catalog:   cat,
		builder:   NewBuilder(cat),
		submitter: NewSubmitter(st, cat),
	}
}

// OnEnter loads the catalog and purchase history. A failed fetch keeps
// whatever snapshot was already cached and surfaces one error message.
func (s *Session) OnEnter(ctx context.Context) {
	s.clearMessages()
	if _, err := s.catalog.RefreshClients(ctx); err != nil {
		s.fail("Could not load clients from the store.")
		return
	}
	if _, err := s.catalog.RefreshProducts(ctx); err != nil {
		s.fail("Could not load products from the store.")
		return
	}
	if purchases, err := s.store.ListPurchases(ctx); err == nil {
		s.purchases = purchases
	} else {
		s.fail("Could not load purchase history from the store.")
	}
}

// SelectClient sets the draft's client.
func (s *Session) SelectClient(clientID uint) {
	s.clearMessages()
	s.builder.SetClient(clientID)
}

// SelectProduct marks a product as the candidate for the next line and
// surfaces its available stock from the catalog snapshot.
func (s *Session) SelectProduct(productID uint) {
	s.clearMessages()
	s.selectedProduct = productID
	s.stockKnown = false
	stock, err := s.catalog.AvailableStock(productID)
	if err != nil {
		s.fail("Product not found in the catalog.")
		return
	}
	s.availableStock = stock
	s.stockKnown = true
}

// AddProduct appends the selected product with the given quantity to the
// draft. On success the product selection is cleared for the next entry.
func (s *Session) AddProduct(quantity int) {
	if err := s.builder.AddLine(s.selectedProduct, quantity); err != nil {
		s.fail(messageFor(err))
		return
	}
	s.clearMessages()
	s.selectedProduct = 0
	s.stockKnown = false
}

// RemoveProduct drops a line from the draft.
func (s *Session) RemoveProduct(productID uint) {
	s.clearMessages()
	s.builder.RemoveLine(productID)
}

// Submit registers the assembled purchase. On success the draft is reset
// and the purchase history reloaded; on failure the draft is preserved so
// the user can retry.
func (s *Session) Submit(ctx context.Context) {
	if _, err := s.submitter.Submit(ctx, s.builder); err != nil {
		s.fail(messageFor(err))
		return
	}
	s.builder.Reset()
	s.succeed("Purchase registered successfully.")
	if purchases, err := s.store.ListPurchases(ctx); err == nil {
		s.purchases = purchases
	}
}

// --- read accessors for rendering ---

func (s *Session) Clients() []store.ClientRecord   { return s.catalog.Clients() }
func (s *Session) Products() []store.ProductRecord { return s.catalog.Products() }

func (s *Session) Purchases() []store.PurchaseRecord {
	out := make([]store.PurchaseRecord, len(s.purchases))
	copy(out, s.purchases)
	return out
}

func (s *Session) ClientID() uint    { return s.builder.ClientID() }
func (s *Session) Lines() []LineItem { return s.builder.Lines() }
func (s *Session) Total() float64    { return s.builder.Total() }

// AvailableStock returns the stock figure for the currently selected
// product, and whether one is known.
func (s *Session) AvailableStock() (int, bool) { return s.availableStock, s.stockKnown }

func (s *Session) ErrorMessage() string   { return s.errMsg }
func (s *Session) SuccessMessage() string { return s.okMsg }

func (s *Session) fail(msg string) {
	s.errMsg = msg
	s.okMsg = ""
}

func (s *Session) succeed(msg string) {
	s.okMsg = msg
	s.errMsg = ""
}

func (s *Session) clearMessages() {
	s.errMsg = ""
	s.okMsg = ""
}

func messageFor(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		switch ve.Kind {
		case KindMissingFields:
			return "Fill in product and quantity."
		case KindDuplicateProduct:
			return "This product is already in the purchase."
		case KindInsufficientStock:
			return "Insufficient stock for the requested quantity."
		case KindNoClient:
			return "Select a client."
		case KindEmptyOrder:
			return "Add at least one product to the purchase."
		}
	}
	if errors.Is(err, ErrSubmitInProgress) {
		return "A submission is already in progress."
	}
	if errors.Is(err, catalog.ErrUnknownProduct) {
		return "Product not found in the catalog."
	}
	var se *SubmissionError
	if errors.As(err, &se) {
		return "Could not register the purchase."
	}
	return "The store is unreachable. Try again."
}
