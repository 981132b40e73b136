package contract

import "context"

// Repository provides the contract rows for one scheduler run.
type Repository interface {
	ListContracts(ctx context.Context) ([]Record, error)
}
