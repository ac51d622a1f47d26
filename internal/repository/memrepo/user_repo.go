package memrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
)

type UserRepository struct {
	store *Store
	lk    sync.Locker
}

func (u *UserRepository) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	u.lk.Lock()
	defer u.lk.Unlock()

	if _, exists := u.store.usernames[args.Username]; exists {
		return nil, fmt.Errorf("[memrepo] username `%s`: %w", args.Username, domain.ErrDuplicateKey)
	}

	u.store.nextUserID++
	now := u.store.now()
	user := &domain.User{
		ID:        u.store.nextUserID,
		CreatedAt: now,
		UpdatedAt: now,
		Username:  args.Username,
		Password:  args.Password,
		Role:      args.Role,
		Verified:  args.Verified,
	}
	u.store.users[user.ID] = user
	u.store.usernames[user.Username] = user.ID
	cp := *user
	return &cp, nil
}

func (u *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u.lk.Lock()
	defer u.lk.Unlock()

	user, ok := u.store.users[id]
	if !ok {
		return nil, fmt.Errorf("[memrepo] user %d: %w", id, domain.ErrRecordNotFound)
	}
	cp := *user
	return &cp, nil
}

func (u *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u.lk.Lock()
	defer u.lk.Unlock()

	id, ok := u.store.usernames[username]
	if !ok {
		return nil, fmt.Errorf("[memrepo] username `%s`: %w", username, domain.ErrRecordNotFound)
	}
	cp := *u.store.users[id]
	return &cp, nil
}

// LockByID в памяти сводится к проверке существования: взаимное исключение
// обеспечивает блокировка Do.
func (u *UserRepository) LockByID(_ context.Context, id int64) error {
	u.lk.Lock()
	defer u.lk.Unlock()

	if _, ok := u.store.users[id]; !ok {
		return fmt.Errorf("[memrepo] user %d: %w", id, domain.ErrRecordNotFound)
	}
	return nil
}
