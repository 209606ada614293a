package ports

import (
	"distio/domain/dist"
)

// Source yields distribution values from one input document. Reading is
// atomic: any invalid content fails the whole read and no values are
// returned.
type Source[F dist.Real] interface {
	// Read ingests the entire input and fits one value per schema
	// column, in schema order.
	Read() ([]dist.Value[F], error)
}

// RowCounter is implemented by sources that can report how many data
// rows their last successful Read consumed.
type RowCounter interface {
	Rows() int
}
