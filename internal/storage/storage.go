// Package storage defines the whole-document persistence contract shared by
// every backend. A document is one complete JSON collection or singleton.
package storage

import (
	"context"
	"errors"
)

// ErrDocumentMissing is returned by Read when the document was never written.
var ErrDocumentMissing = errors.New("document missing")

// Document names. The file backend uses them verbatim as file names.
const (
	OrdersDocument            = "orders.json"
	CharactersDocument        = "characters.json"
	CharacterSeriesDocument   = "characterSeries.json"
	CommissionOptionsDocument = "commissionOptions.json"
	CommissionStylesDocument  = "commissionStyles.json"
	SiteContentDocument       = "siteContent.json"
	ContractsDocument         = "contracts.json"
)

// DocumentStore reads and replaces whole JSON documents by name.
type DocumentStore interface {
	Read(ctx context.Context, name string, dst any) error
	Write(ctx context.Context, name string, src any) error
	Close() error
}

// HealthChecker is implemented by backends that hold a connection.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
