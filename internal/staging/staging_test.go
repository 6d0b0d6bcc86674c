package staging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarques/retailingest/internal/staging"
)

func TestBatch_Records(t *testing.T) {
	records := []staging.Record{
		{BillNo: "536365", Itemname: "WHITE HANGING HEART T-LIGHT HOLDER"},
		{BillNo: "536366", Itemname: "HAND WARMER UNION JACK"},
	}

	b := staging.NewBatch(records)
	assert.Equal(t, 2, b.Len())

	got, err := b.Records()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestBatch_Discard(t *testing.T) {
	b := staging.NewBatch([]staging.Record{{BillNo: "536365"}})

	b.Discard()

	assert.Equal(t, 0, b.Len())

	_, err := b.Records()
	assert.ErrorIs(t, err, staging.ErrDiscarded)

	// Discarding twice must not panic or change the outcome.
	b.Discard()
	_, err = b.Records()
	assert.ErrorIs(t, err, staging.ErrDiscarded)
}

func TestBatch_Empty(t *testing.T) {
	b := staging.NewBatch(nil)
	assert.Equal(t, 0, b.Len())

	got, err := b.Records()
	require.NoError(t, err)
	assert.Empty(t, got)
}
