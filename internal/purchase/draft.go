// Package purchase implements the order assembly workflow: a draft built
// line by line against the cached catalog, then submitted atomically to the
// record store.
package purchase

import (
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/store"
)

// LineItem is one product+quantity entry inside a draft. Name and price are
// snapshots of the catalog at the moment the line was added.
type LineItem struct {
	ProductID   uint
	ProductName string
	UnitPrice   float64
	Quantity    int
}

// Subtotal is the line amount.
func (l LineItem) Subtotal() float64 { return l.UnitPrice * float64(l.Quantity) }

// Draft is the in-progress, unpersisted order. A zero ClientID means no
// client has been selected yet.
type Draft struct {
	ClientID uint
	Lines    []LineItem
}

// StockCatalog is the slice of the catalog cache the builder needs.
type StockCatalog interface {
	AvailableStock(productID uint) (int, error)
	Product(productID uint) (store.ProductRecord, bool)
}

// Builder owns a single draft and enforces its invariants: no duplicate
// product lines, quantities within last-observed stock, total always
// derived from the lines.
type Builder struct {
	catalog StockCatalog
	draft   Draft
}

func NewBuilder(catalog StockCatalog) *Builder {
	return &Builder{catalog: catalog}
}

// SetClient selects the client for the draft.
func (b *Builder) SetClient(clientID uint) { b.draft.ClientID = clientID }

func (b *Builder) ClientID() uint { return b.draft.ClientID }

// Lines returns a copy of the current draft lines, in insertion order.
func (b *Builder) Lines() []LineItem {
	out := make([]LineItem, len(b.draft.Lines))
	copy(out, b.draft.Lines)
	return out
}

// AddLine validates and appends a line. The stock check runs against the
// last fetched snapshot, not a live lookup; the store re-checks at
// submission time. On any error the draft is left unchanged.
func (b *Builder) AddLine(productID uint, quantity int) error {
	if productID == 0 || quantity < 1 {
		return &ValidationError{Kind: KindMissingFields}
	}
	for _, l := range b.draft.Lines {
		if l.ProductID == productID {
			return &ValidationError{Kind: KindDuplicateProduct}
		}
	}
	available, err := b.catalog.AvailableStock(productID)
	if err != nil {
		return err
	}
	if quantity > available {
		return &ValidationError{Kind: KindInsufficientStock}
	}
	prod, _ := b.catalog.Product(productID)
	b.draft.Lines = append(b.draft.Lines, LineItem{
		ProductID:   productID,
		ProductName: prod.Name,
		UnitPrice:   prod.UnitPrice,
		Quantity:    quantity,
	})
	return nil
}

// RemoveLine drops the line for productID. Removing an absent line is a
// no-op, not an error.
func (b *Builder) RemoveLine(productID uint) {
	for i, l := range b.draft.Lines {
		if l.ProductID == productID {
			b.draft.Lines = append(b.draft.Lines[:i], b.draft.Lines[i+1:]...)
			return
		}
	}
}

// Total recomputes the draft total from the current lines. Never cached.
func (b *Builder) Total() float64 {
	var total float64
	for _, l := range b.draft.Lines {
		total += l.Subtotal()
	}
	return total
}

// Empty reports whether the draft has no lines.
func (b *Builder) Empty() bool { return len(b.draft.Lines) == 0 }

// Reset clears the client selection and all lines.
func (b *Builder) Reset() { b.draft = Draft{} }
