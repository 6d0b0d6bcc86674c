package staging

import "errors"

// ErrDiscarded is returned when a batch is read after Discard.
var ErrDiscarded = errors.New("staging batch already discarded")

// Record is one raw line of an export, kept as untouched text in source
// column order. Typing happens later, in the transform.
type Record struct {
	BillNo     string
	Itemname   string
	Quantity   string
	Date       string
	Price      string
	CustomerID string
	Country    string
}

// Batch holds the staged records for exactly one import run. It is filled
// once by the parser, read by the transform, then discarded.
type Batch struct {
	records   []Record
	discarded bool
}

func NewBatch(records []Record) *Batch {
	return &Batch{records: records}
}

// Len reports the number of staged records. Zero after Discard.
func (b *Batch) Len() int {
	return len(b.records)
}

// Records returns the staged records, or ErrDiscarded once the batch has
// been discarded.
func (b *Batch) Records() ([]Record, error) {
	if b.discarded {
		return nil, ErrDiscarded
	}

	return b.records, nil
}

// Discard drops the staged records. The batch cannot be read afterwards;
// discarding twice is a no-op.
func (b *Batch) Discard() {
	b.records = nil
	b.discarded = true
}
