package productfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/storefront/pkg/domain"
)

func TestAccumulator_Reset(t *testing.T) {
	acc := NewAccumulator()
	acc.Append(products(1, 5), 0)

	kept := acc.Reset(append(products(10, 12), products(11, 11)...), 0)
	assert.Equal(t, []int64{10, 11, 12}, ids(kept))
	assert.Equal(t, 3, acc.Len())
	assert.False(t, acc.contains(1))
	assert.True(t, acc.contains(11))
}

func TestAccumulator_ResetWithLimit(t *testing.T) {
	acc := NewAccumulator()
	kept := acc.Reset(products(1, 20), 8)
	assert.Len(t, kept, 8)
	assert.Equal(t, 8, acc.Len())
	assert.False(t, acc.contains(9), "truncated records are not marked seen")
}

func TestAccumulator_Unseen(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset(products(1, 5), 0)

	page := []domain.Product{{ID: 4}, {ID: 6}, {ID: 6}, {ID: 7}, {ID: 1}}
	assert.Equal(t, []int64{6, 7}, ids(acc.Unseen(page)))
	assert.Equal(t, 5, acc.Len(), "unseen doesn't change the accumulator")
	assert.Empty(t, acc.Unseen(products(1, 5)))
}

func TestAccumulator_Append(t *testing.T) {
	tbl := []struct {
		name  string
		recs  []domain.Product
		limit int
		added []int64
		total int
	}{
		{name: "unbounded", recs: products(4, 6), limit: 0, added: []int64{4, 5, 6}, total: 6},
		{name: "truncated", recs: products(4, 10), limit: 5, added: []int64{4, 5}, total: 5},
		{name: "already full", recs: products(4, 6), limit: 3, added: []int64{}, total: 3},
		{name: "known skipped", recs: products(2, 4), limit: 0, added: []int64{4}, total: 4},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccumulator()
			acc.Reset(products(1, 3), 0)
			added := acc.Append(tt.recs, tt.limit)
			assert.Equal(t, tt.added, ids(added))
			assert.Equal(t, tt.total, acc.Len())
			assert.Len(t, acc.seen, acc.Len())
		})
	}
}

func TestAccumulator_ItemsIsCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Reset(products(1, 3), 0)
	items := acc.Items()
	items[0].ID = 100
	assert.Equal(t, int64(1), acc.Items()[0].ID)
}
