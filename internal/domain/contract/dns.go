package contract

import (
	"context"

	"github.com/lite-lake/simply-dns/internal/simply"
)

// RecordAPI is the slice of the Simply.com client the application layers
// depend on. *simply.Client satisfies it; tests substitute fakes.
type RecordAPI interface {
	ListRecords(ctx context.Context, domain string) ([]simply.Record, error)
	CreateRecord(ctx context.Context, domain string, record simply.CreateRequest) ([]simply.RecordID, error)
	UpdateRecord(ctx context.Context, domain string, id simply.RecordID, record simply.UpdateRequest) error
	DeleteRecord(ctx context.Context, domain string, id simply.RecordID) error
}
