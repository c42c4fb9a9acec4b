package domain

import "context"

// Repo is the storage surface for accounts
type Repo interface {
	Get(ctx context.Context, id string) (Account, error)
	Insert(ctx context.Context, a Account) (Account, error)
	Update(ctx context.Context, a Account) (Account, error)
	Delete(ctx context.Context, id string) error
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Get(ctx context.Context, id string) (Account, error)
	// Save creates or replaces the account; created reports an insert
	Save(ctx context.Context, id string, in SaveInput) (a Account, created bool, err error)
	Delete(ctx context.Context, id string) error
}
