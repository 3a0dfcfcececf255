package purchase

import (
	"context"
	"sync/atomic"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

// PurchaseStore is the slice of the record store client the submitter needs.
type PurchaseStore interface {
	CreatePurchase(ctx context.Context, req store.PurchaseRequest) (*store.PurchaseRecord, error)
}

// ProductRefresher reconciles the cached stock after the store's
// server-side decrement.
type ProductRefresher interface {
	RefreshProducts(ctx context.Context) ([]store.ProductRecord, error)
}

// Submitter executes the submit step of the workflow. It guards the draft
// preconditions, posts the payload, and triggers a catalog refresh on
// success. The draft itself is never mutated here; the caller resets it
// after a successful submit.
type Submitter struct {
	store    PurchaseStore
	catalog  ProductRefresher
	inFlight atomic.Bool
}

func NewSubmitter(st PurchaseStore, catalog ProductRefresher) *Submitter {
	return &Submitter{store: st, catalog: catalog}
}

// InFlight reports whether a submission is outstanding. UIs disable the
// submit action while this is true.
func (s *Submitter) InFlight() bool { return s.inFlight.Load() }

// Submit posts the draft as a purchase. Precondition failures (no client,
// no lines) are reported without any network call. On transport or store
// failure a *SubmissionError is returned and the draft is untouched, so the
// user can retry without re-entering lines.
func (s *Submitter) Submit(ctx context.Context, b *Builder) (*store.PurchaseRecord, error) {
	if b.ClientID() == 0 {
		return nil, &ValidationError{Kind: KindNoClient}
	}
	lines := b.Lines()
	if len(lines) == 0 {
		return nil, &ValidationError{Kind: KindEmptyOrder}
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInProgress
	}
	defer s.inFlight.Store(false)

	req := store.PurchaseRequest{ClientID: b.ClientID()}
	for _, l := range lines {
		req.Items = append(req.Items, store.PurchaseItemRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	rec, err := s.store.CreatePurchase(ctx, req)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	// Reconcile local stock with the server-side decrement. The purchase
	// already exists, so a failed refresh only leaves the cache stale until
	// the next refresh.
	if s.catalog != nil {
		_, _ = s.catalog.RefreshProducts(ctx)
	}
	return rec, nil
}
