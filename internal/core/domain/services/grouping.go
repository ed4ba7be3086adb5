package services

import (
	"sort"
	"strings"
	"unicode"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"
)

// NameRepairPolicy reports whether a customer-name value looks corrupted and
// should be repaired from the order number. The exact matching rule is a
// best-effort heuristic for malformed upstream imports and is deliberately
// configurable rather than hard-coded.
type NameRepairPolicy func(customerName string) bool

// DefaultNameRepairPolicy flags values that look like dates or bare numbers:
// anything containing "/" or "-", or consisting only of digits. These show up
// when an Excel import shifts a date or row number into the name column.
func DefaultNameRepairPolicy(customerName string) bool {
	if strings.Contains(customerName, "/") || strings.Contains(customerName, "-") {
		return true
	}

	if customerName == "" {
		return false
	}
	for _, r := range customerName {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// OrderGrouper is the grouping engine: a pure, deterministic partition of a
// flat order snapshot into printable groups keyed by the resolved
// (customer name, stock code) pair.
//
// Key resolution per order:
//  1. Customer name: the order's own name field, unless the repair policy
//     flags it, in which case the name is derived from the order number.
//  2. Stock code: the order's own stock code, else the first resolvable code
//     among the line items, else a fragment of the order number.
//
// The result is always sorted by the fixed tier order; ties within a tier
// keep the order in which the key's bucket was first populated. Group never
// fails: the worst malformed input degrades into best-effort key fragments.
type OrderGrouper struct {
	looksCorrupted NameRepairPolicy
}

// NewOrderGrouper creates a grouping engine with the given name-repair
// policy. A nil policy falls back to DefaultNameRepairPolicy.
func NewOrderGrouper(policy NameRepairPolicy) OrderGrouper {
	if policy == nil {
		policy = DefaultNameRepairPolicy
	}
	return OrderGrouper{looksCorrupted: policy}
}

// ResolveCustomerName returns the grouping name for an order, repairing
// corrupted values from the order number.
func (g OrderGrouper) ResolveCustomerName(o *order.Order) string {
	name := o.CustomerName()
	if name != "" && g.looksCorrupted(name) {
		return o.Number().NamePart()
	}
	return name
}

// Group partitions orders into groups. Every input order lands in exactly one
// group; the union of all groups equals the input. The call is total and has
// no side effects.
func (g OrderGrouper) Group(orders []*order.Order) []*group.Group {
	buckets := make(map[group.Key][]*order.Order)
	keyOrder := make([]group.Key, 0, len(orders))

	for _, o := range orders {
		key := group.Key{
			CustomerName: g.ResolveCustomerName(o),
			StockCode:    o.ResolveStockCode(),
		}

		if _, ok := buckets[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], o)
	}

	groups := make([]*group.Group, 0, len(keyOrder))
	for _, key := range keyOrder {
		// NewGroup only fails on empty member sets, which cannot happen here.
		grp, err := group.NewGroup(key, buckets[key])
		if err != nil {
			continue
		}
		groups = append(groups, grp)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Tier().SortRank() < groups[j].Tier().SortRank()
	})

	return groups
}
