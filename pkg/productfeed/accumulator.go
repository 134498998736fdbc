package productfeed

import "github.com/umputun/storefront/pkg/domain"

// Accumulator keeps the ordered list of loaded products together with the
// set of their ids. Both are changed together, len(items) == len(seen) always.
type Accumulator struct {
	items []domain.Product
	seen  map[int64]struct{}
}

// NewAccumulator makes an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[int64]struct{})}
}

// Reset replaces the content with the given page, keeping the first
// occurrence of each id and at most limit records if limit is set.
// Returns what was kept.
func (a *Accumulator) Reset(page []domain.Product, limit int) []domain.Product {
	a.items = nil
	a.seen = make(map[int64]struct{}, len(page))
	return a.Append(a.Unseen(page), limit)
}

// Unseen filters out records already held, duplicates inside the page are dropped too
func (a *Accumulator) Unseen(page []domain.Product) []domain.Product {
	res := make([]domain.Product, 0, len(page))
	inPage := make(map[int64]struct{}, len(page))
	for _, p := range page {
		if _, ok := a.seen[p.ID]; ok {
			continue
		}
		if _, ok := inPage[p.ID]; ok {
			continue
		}
		inPage[p.ID] = struct{}{}
		res = append(res, p)
	}
	return res
}

// Append adds records not held yet, truncating to limit if it is positive.
// Returns the records actually appended.
func (a *Accumulator) Append(recs []domain.Product, limit int) []domain.Product {
	added := make([]domain.Product, 0, len(recs))
	for _, p := range recs {
		if limit > 0 && len(a.items) >= limit {
			break
		}
		if _, ok := a.seen[p.ID]; ok {
			continue
		}
		a.seen[p.ID] = struct{}{}
		a.items = append(a.items, p)
		added = append(added, p)
	}
	return added
}

// Len returns the number of held records
func (a *Accumulator) Len() int {
	return len(a.items)
}

// contains reports whether the id is held
func (a *Accumulator) contains(id int64) bool {
	_, ok := a.seen[id]
	return ok
}

// Items returns a copy of held records in insertion order
func (a *Accumulator) Items() []domain.Product {
	res := make([]domain.Product, len(a.items))
	copy(res, a.items)
	return res
}
