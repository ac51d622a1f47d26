package memrepo

import (
	"context"
	"sync"

	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

// UnitOfWork выполняет контракт uow.UOW поверх Store. Транзакции эмулируются глобальной
// блокировкой со снимком состояния: fn выполняется эксклюзивно, при ошибке состояние
// откатывается. Этого достаточно для всех атомарных секций check-then-write сервисного слоя.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(ctx, &memTX{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// GetRepository возвращает репозиторий, берущий блокировку хранилища на каждый вызов.
func (u *UnitOfWork) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return repositoryFor(u.store, name, &u.store.mu)
}

type memTX struct {
	store *Store
}

// Get возвращает репозиторий без собственной блокировки: внутри Do она уже взята.
func (t *memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return repositoryFor(t.store, name, noopLocker{})
}

func repositoryFor(store *Store, name uow.RepositoryName, lk sync.Locker) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.TransactionRepoName:
		return &TransactionRepository{store: store, lk: lk}, nil
	case repoargs.UserRepoName:
		return &UserRepository{store: store, lk: lk}, nil
	case repoargs.EventRepoName:
		return &EventRepository{store: store, lk: lk}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

// noopLocker используется внутри транзакции, когда блокировка хранилища уже взята.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}
