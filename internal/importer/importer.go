package importer

import (
	"io"

	"github.com/jmarques/retailingest/internal/staging"
	"github.com/jmarques/retailingest/internal/transaction"
)

// Parser stages raw rows from a delimited export and types them.
type Parser interface {
	Parse(r io.Reader) (*staging.Batch, error)
	Transform(batch *staging.Batch) ([]transaction.CreateParams, error)
}
