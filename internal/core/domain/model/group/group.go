package group

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/order"
)

// ErrGroupHasNoMembers is returned when a group is built from an empty order set.
var ErrGroupHasNoMembers = errors.New("group must have at least one member order")

// Key is the composite grouping key: the resolved customer name plus the
// resolved stock code. Keys are unique within one grouping pass.
type Key struct {
	CustomerName string
	StockCode    string
}

// String returns the canonical key representation.
func (k Key) String() string {
	return k.CustomerName + "_" + k.StockCode
}

// Group is a derived, ephemeral bucket of orders sharing one grouping key.
// Groups are recomputed from scratch on every load of the order source and
// never persisted or mutated; they are valid only until the next grouping
// pass or until the underlying status/date filter changes.
//
// Aggregates are computed once at construction:
//   - tier from the summed totalItems of all members
//   - display name from the tier tag, customer name and first order number
//   - unique barcode and stock-code sets in first-seen order
type Group struct {
	key     Key
	tier    Tier
	name    string
	members []*order.Order

	totalQuantity int
	totalAmount   float64
	barcodes      orderedSet
	stockCodes    orderedSet
}

// NewGroup builds a group and its aggregates from a non-empty member set.
// All members are assumed to share the key; the grouping engine guarantees
// this by construction.
func NewGroup(key Key, members []*order.Order) (*Group, error) {
	if len(members) == 0 {
		return nil, ErrGroupHasNoMembers
	}

	g := &Group{
		key:     key,
		members: members,
	}

	for _, member := range members {
		g.totalQuantity += member.TotalItems()
		g.totalAmount += member.TotalAmount()

		if strings.TrimSpace(member.Barcode()) != "" {
			g.barcodes.Add(member.Barcode())
		}
		if strings.TrimSpace(member.StockCode()) != "" {
			g.stockCodes.Add(member.StockCode())
		}
		for _, item := range member.Items() {
			if code := item.DisplayCode(); strings.TrimSpace(code) != "" {
				g.stockCodes.Add(code)
			}
		}
	}

	g.tier = TierForQuantity(g.totalQuantity)
	g.name = fmt.Sprintf("%s - %s - %s", g.tier.Tag(), key.CustomerName, members[0].Number())

	return g, nil
}

// Key returns the grouping key.
func (g *Group) Key() Key {
	return g.key
}

// Tier returns the quantity tier.
func (g *Group) Tier() Tier {
	return g.tier
}

// Name returns the human display label. It identifies nothing; only the key does.
func (g *Group) Name() string {
	return g.name
}

// Members returns the ordered member orders.
func (g *Group) Members() []*order.Order {
	return g.members
}

// Count returns the number of member orders.
func (g *Group) Count() int {
	return len(g.members)
}

// TotalQuantity returns the summed totalItems across members.
func (g *Group) TotalQuantity() int {
	return g.totalQuantity
}

// TotalAmount returns the summed monetary amount across members.
func (g *Group) TotalAmount() float64 {
	return g.totalAmount
}

// Barcodes returns the unique member barcodes in first-seen order.
// May be empty; consumers must tolerate that.
func (g *Group) Barcodes() []string {
	return g.barcodes.Values()
}

// BarcodeList returns the unique barcodes as a comma-joined string.
func (g *Group) BarcodeList() string {
	return g.barcodes.Joined()
}

// FirstBarcode returns the first-seen barcode, or "" when none exists.
func (g *Group) FirstBarcode() string {
	return g.barcodes.First()
}

// StockCodes returns the unique stock codes in first-seen order.
func (g *Group) StockCodes() []string {
	return g.stockCodes.Values()
}

// StockCodeList returns the unique stock codes as a comma-joined string.
func (g *Group) StockCodeList() string {
	return g.stockCodes.Joined()
}

// FirstStockCode returns the first-seen stock code, or "" when none exists.
func (g *Group) FirstStockCode() string {
	return g.stockCodes.First()
}

// orderedSet is a string set that preserves first-seen insertion order so the
// comma-joined representations stay deterministic across passes.
type orderedSet struct {
	values []string
	seen   map[string]struct{}
}

func (s *orderedSet) Add(value string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
}

func (s *orderedSet) Values() []string {
	return s.values
}

func (s *orderedSet) Joined() string {
	return strings.Join(s.values, ", ")
}

func (s *orderedSet) First() string {
	if len(s.values) == 0 {
		return ""
	}
	return s.values[0]
}
