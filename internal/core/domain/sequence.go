package domain

import "fmt"

// CounterKind selects which yearly number sequence a caller consumes.
type CounterKind string

const (
	CounterFolio   CounterKind = "FOLIO"
	CounterInvoice CounterKind = "INVOICE"
)

// Prefix returns the human-readable prefix for numbers of this kind.
func (k CounterKind) Prefix() string {
	if k == CounterInvoice {
		return "INV"
	}
	return "F"
}

// SequenceCounter is one per (kind, year). LastNumber is incremented only
// inside the same store transaction that persists the record consuming the
// number, so a failed transaction never burns a number and no two callers
// ever observe the same one.
type SequenceCounter struct {
	Kind       CounterKind `json:"kind"`
	Year       int         `json:"year"`
	LastNumber int64       `json:"lastNumber"`
	Prefix     string      `json:"prefix"`
}

// FormatSequenceNumber renders "{PREFIX}-{year}-{n zero-padded to 5}".
func FormatSequenceNumber(kind CounterKind, year int, n int64) string {
	return fmt.Sprintf("%s-%d-%05d", kind.Prefix(), year, n)
}
