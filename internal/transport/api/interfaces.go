package api

import (
	"context"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/internal/service"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks -source=interfaces.go

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	CreateUser(ctx context.Context, actor domain.Actor, args service.CreateUserArgs) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TransactionServicer interface {
	CreatePurchase(ctx context.Context, actor domain.Actor, args service.PurchaseArgs) (*domain.Transaction, error)
	CreateAdjustment(ctx context.Context, actor domain.Actor, args service.AdjustmentArgs) (*domain.Transaction, error)
	CreateTransfer(
		ctx context.Context,
		actor domain.Actor,
		args service.TransferArgs,
	) (*domain.Transaction, *domain.Transaction, error)
	CreateRedemption(ctx context.Context, actor domain.Actor, args service.RedemptionArgs) (*domain.Transaction, error)
	ProcessRedemption(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error)
	LookupRedemption(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error)
	SetSuspicious(ctx context.Context, actor domain.Actor, id int64, suspicious bool) (*domain.Transaction, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error)
	Search(
		ctx context.Context,
		actor domain.Actor,
		filter repoargs.TransactionFilter,
		page repoargs.Page,
	) ([]domain.Transaction, int64, error)
	PendingRedemptions(
		ctx context.Context,
		actor domain.Actor,
		page repoargs.Page,
	) ([]domain.Transaction, int64, error)
	EffectiveBalance(ctx context.Context, userID int64) (int64, error)
}

type EventServicer interface {
	CreateEvent(ctx context.Context, actor domain.Actor, args service.CreateEventArgs) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	AddGuest(ctx context.Context, actor domain.Actor, eventID, userID int64) error
	RemoveGuest(ctx context.Context, actor domain.Actor, eventID, userID int64) error
	AddOrganizer(ctx context.Context, actor domain.Actor, eventID, userID int64) error
	Publish(ctx context.Context, actor domain.Actor, id int64) error
	Deactivate(ctx context.Context, actor domain.Actor, id int64) error
	AwardPoints(
		ctx context.Context,
		actor domain.Actor,
		eventID int64,
		args service.AwardPointsArgs,
	) ([]domain.Transaction, error)
}
