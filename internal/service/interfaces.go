package service

import (
	"context"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	CreatePair(
		ctx context.Context,
		outgoing repoargs.TransactionCreate,
		incoming repoargs.TransactionCreate,
	) (*domain.Transaction, *domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error)
	Search(
		ctx context.Context,
		filter repoargs.TransactionFilter,
		page repoargs.Page,
	) ([]domain.Transaction, int64, error)
	SetSuspicious(ctx context.Context, id int64, suspicious bool) (*domain.Transaction, error)
	SetProcessed(ctx context.Context, id int64, processedBy int64) (*domain.Transaction, error)
	EffectiveBalance(ctx context.Context, userID int64) (int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	LockByID(ctx context.Context, id int64) error
}

type EventRepository interface {
	Create(ctx context.Context, args repoargs.EventCreate) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error)
	AddAwarded(ctx context.Context, id int64, amount int64) error
	AddOrganizer(ctx context.Context, eventID, userID int64) error
	AddGuest(ctx context.Context, eventID, userID int64) error
	RemoveGuest(ctx context.Context, eventID, userID int64) error
	SetPublished(ctx context.Context, id int64, published bool) error
	SetActive(ctx context.Context, id int64, active bool) error
}
