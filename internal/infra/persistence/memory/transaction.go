package memory

import (
	"context"

	"lightmap/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

// NewMarkerRepository returns a marker repository over the store.
func (f *repositoryFactory) NewMarkerRepository() repository.MarkerRepository {
	return NewMarkerRepository(f.store)
}

// NewTransactionManager runs transactions one at a time against the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive write access, restoring the prior state on error or panic.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	snap := tm.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
