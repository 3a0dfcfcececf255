package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

type stubStore struct {
	calls   int
	lastReq store.PurchaseRequest
	resp    *store.PurchaseRecord
	err     error

	entered chan struct{} // closed when CreatePurchase is entered, if set
	release chan struct{} // blocks CreatePurchase until closed, if set
}

func (s *stubStore) CreatePurchase(ctx context.Context, req store.PurchaseRequest) (*store.PurchaseRecord, error) {
	s.calls++
	s.lastReq = req
	if s.entered != nil {
		close(s.entered)
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubRefresher struct {
	calls int
}

func (s *stubRefresher) RefreshProducts(ctx context.Context) ([]store.ProductRecord, error) {
	s.calls++
	return nil, nil
}

func builderWithLine(t *testing.T, clientID uint) *Builder {
	t.Helper()
	b := NewBuilder(newStubCatalog(store.ProductRecord{ID: 1, Name: "P1", UnitPrice: 10, StockQuantity: 5}))
	b.SetClient(clientID)
	if err := b.AddLine(1, 2); err != nil {
		t.Fatalf("add line: %v", err)
	}
	return b
}

func TestSubmitRequiresClient(t *testing.T) {
	st := &stubStore{}
	b := NewBuilder(newStubCatalog(store.ProductRecord{ID: 1, Name: "P1", UnitPrice: 10, StockQuantity: 5}))
	if err := b.AddLine(1, 1); err != nil {
		t.Fatalf("add line: %v", err)
	}
	s := NewSubmitter(st, &stubRefresher{})

	_, err := s.Submit(context.Background(), b)
	if !IsValidation(err, KindNoClient) {
		t.Fatalf("expected no-client, got %v", err)
	}
	if st.calls != 0 {
		t.Fatalf("store was called %d times for a guarded submit", st.calls)
	}
}

func TestSubmitRequiresLines(t *testing.T) {
	st := &stubStore{}
	b := NewBuilder(newStubCatalog())
	b.SetClient(1)
	s := NewSubmitter(st, &stubRefresher{})

	_, err := s.Submit(context.Background(), b)
	if !IsValidation(err, KindEmptyOrder) {
		t.Fatalf("expected empty-order, got %v", err)
	}
	if st.calls != 0 {
		t.Fatalf("store was called %d times for a guarded submit", st.calls)
	}
}

func TestSubmitPostsPayloadAndRefreshes(t *testing.T) {
	st := &stubStore{resp: &store.PurchaseRecord{ID: 9, ClientID: 3, Total: 20}}
	ref := &stubRefresher{}
	b := builderWithLine(t, 3)
	s := NewSubmitter(st, ref)

	rec, err := s.Submit(context.Background(), b)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.ID != 9 {
		t.Fatalf("unexpected purchase returned: %+v", rec)
	}
	if st.lastReq.ClientID != 3 {
		t.Fatalf("payload clientId = %d, want 3", st.lastReq.ClientID)
	}
	if len(st.lastReq.Items) != 1 || st.lastReq.Items[0].ProductID != 1 || st.lastReq.Items[0].Quantity != 2 {
		t.Fatalf("unexpected payload items: %+v", st.lastReq.Items)
	}
	if ref.calls != 1 {
		t.Fatalf("product refresh calls = %d, want 1", ref.calls)
	}
}

func TestSubmitPreservesLineOrder(t *testing.T) {
	st := &stubStore{resp: &store.PurchaseRecord{ID: 1}}
	b := NewBuilder(newStubCatalog(
		store.ProductRecord{ID: 5, Name: "C", UnitPrice: 1, StockQuantity: 9},
		store.ProductRecord{ID: 2, Name: "A", UnitPrice: 1, StockQuantity: 9},
		store.ProductRecord{ID: 8, Name: "B", UnitPrice: 1, StockQuantity: 9},
	))
	b.SetClient(1)
	for _, id := range []uint{5, 2, 8} {
		if err := b.AddLine(id, 1); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}
	s := NewSubmitter(st, &stubRefresher{})
	if _, err := s.Submit(context.Background(), b); err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := []uint{5, 2, 8}
	for i, item := range st.lastReq.Items {
		if item.ProductID != want[i] {
			t.Fatalf("item %d = product %d, want %d", i, item.ProductID, want[i])
		}
	}
}

func TestSubmitFailureLeavesDraftIntact(t *testing.T) {
	st := &stubStore{err: &store.RequestError{Status: 400, Code: "insufficient_stock"}}
	ref := &stubRefresher{}
	b := builderWithLine(t, 3)
	s := NewSubmitter(st, ref)

	_, err := s.Submit(context.Background(), b)
	var se *SubmissionError
	if !errors.As(err, &se) {
		t.Fatalf("expected SubmissionError, got %v", err)
	}
	var re *store.RequestError
	if !errors.As(err, &re) || re.Code != "insufficient_stock" {
		t.Fatalf("store rejection not preserved in chain: %v", err)
	}
	if b.ClientID() != 3 || len(b.Lines()) != 1 || b.Total() != 20 {
		t.Fatalf("draft changed after failed submit: client=%d lines=%d total=%v", b.ClientID(), len(b.Lines()), b.Total())
	}
	if ref.calls != 0 {
		t.Fatalf("refresh ran after failed submit")
	}
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	st := &stubStore{
		resp:    &store.PurchaseRecord{ID: 1},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	b := builderWithLine(t, 3)
	s := NewSubmitter(st, &stubRefresher{})

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), b)
		done <- err
	}()

	select {
	case <-st.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the store")
	}
	if !s.InFlight() {
		t.Fatal("submitter not marked in-flight")
	}
	if _, err := s.Submit(context.Background(), b); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}

	close(st.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if st.calls != 1 {
		t.Fatalf("store called %d times, want 1", st.calls)
	}
	if s.InFlight() {
		t.Fatal("in-flight latch not released")
	}
}
