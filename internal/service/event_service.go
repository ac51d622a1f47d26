package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
)

// EventService управляет событиями и начислением баллов их гостям. Начисления создают
// обычные записи журнала типа event, связанные с событием через related_id; суммарная
// выдача события никогда не превышает его бюджет.
type EventService struct {
	uow       uow.UOW
	eventRepo EventRepository
	userRepo  UserRepository
}

func NewEventService(u uow.UOW) (*EventService, error) {
	eventRepo, eventRepoErr := uow.GetRepositoryAs[EventRepository](u, uow.RepositoryName(repoargs.EventRepoName))
	if eventRepoErr != nil {
		return nil, eventRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &EventService{
		uow:       u,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}, nil
}

type CreateEventArgs struct {
	Name         string
	StartsAt     time.Time
	EndsAt       time.Time
	Capacity     int64
	PointsBudget int64
	Organizers   []int64
}

// CreateEvent создает событие вместе со списком организаторов атомарно.
// Доступно менеджеру и выше.
func (s *EventService) CreateEvent(
	ctx context.Context,
	actor domain.Actor,
	args CreateEventArgs,
) (*domain.Event, error) {
	if !Allowed(actor.Role, OpCreateEvent) {
		return nil, domain.ErrUnauthorized
	}
	if args.Name == "" || !args.EndsAt.After(args.StartsAt) {
		return nil, fmt.Errorf("event name and time window are required: %w", domain.ErrInvalidAmount)
	}
	if args.PointsBudget < 0 || args.Capacity < 0 {
		return nil, fmt.Errorf("event budget and capacity must not be negative: %w", domain.ErrInvalidAmount)
	}

	var event *domain.Event
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		eventRepo, userRepo, _, repoErr := s.repos(tx)
		if repoErr != nil {
			return repoErr
		}

		for _, userID := range args.Organizers {
			if _, findErr := userRepo.FindByID(c, userID); findErr != nil {
				return findErr
			}
		}

		var createErr error
		event, createErr = eventRepo.Create(c, repoargs.EventCreate{
			Name:         args.Name,
			StartsAt:     args.StartsAt,
			EndsAt:       args.EndsAt,
			Capacity:     args.Capacity,
			PointsBudget: args.PointsBudget,
			Organizers:   args.Organizers,
		})
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting event %d: %w", id, err)
	}
	return event, nil
}

// AddGuest записывает юзера гостем события. Доступно организатору события или менеджеру.
// Вместимость проверяется под блокировкой строки события (capacity 0 - без ограничения).
func (s *EventService) AddGuest(ctx context.Context, actor domain.Actor, eventID, userID int64) error {
	err := withConflictRetry(ctx, func() error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			eventRepo, userRepo, _, repoErr := s.repos(tx)
			if repoErr != nil {
				return repoErr
			}

			event, findErr := eventRepo.FindByIDForUpdate(c, eventID)
			if findErr != nil {
				return findErr
			}
			if authzErr := s.canManage(actor, event); authzErr != nil {
				return authzErr
			}
			if _, userErr := userRepo.FindByID(c, userID); userErr != nil {
				return userErr
			}
			if event.Capacity > 0 && int64(len(event.Guests)) >= event.Capacity {
				return domain.ErrEventFull
			}
			return eventRepo.AddGuest(c, eventID, userID)
		})
	})
	if err != nil {
		return fmt.Errorf("adding guest %d to event %d: %w", userID, eventID, err)
	}
	return nil
}

// RemoveGuest убирает гостя события. Доступно организатору события или менеджеру.
func (s *EventService) RemoveGuest(ctx context.Context, actor domain.Actor, eventID, userID int64) error {
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		eventRepo, _, _, repoErr := s.repos(tx)
		if repoErr != nil {
			return repoErr
		}

		event, findErr := eventRepo.FindByIDForUpdate(c, eventID)
		if findErr != nil {
			return findErr
		}
		if authzErr := s.canManage(actor, event); authzErr != nil {
			return authzErr
		}
		return eventRepo.RemoveGuest(c, eventID, userID)
	})
	if err != nil {
		return fmt.Errorf("removing guest %d from event %d: %w", userID, eventID, err)
	}
	return nil
}

// AddOrganizer добавляет организатора события. Доступно менеджеру и выше.
func (s *EventService) AddOrganizer(ctx context.Context, actor domain.Actor, eventID, userID int64) error {
	if !Allowed(actor.Role, OpManageAnyEvent) {
		return domain.ErrUnauthorized
	}
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		eventRepo, userRepo, _, repoErr := s.repos(tx)
		if repoErr != nil {
			return repoErr
		}
		if _, userErr := userRepo.FindByID(c, userID); userErr != nil {
			return userErr
		}
		return eventRepo.AddOrganizer(c, eventID, userID)
	})
	if err != nil {
		return fmt.Errorf("adding organizer %d to event %d: %w", userID, eventID, err)
	}
	return nil
}

// Publish делает событие видимым. Доступно менеджеру и выше.
func (s *EventService) Publish(ctx context.Context, actor domain.Actor, id int64) error {
	if !Allowed(actor.Role, OpManageAnyEvent) {
		return domain.ErrUnauthorized
	}
	if err := s.eventRepo.SetPublished(ctx, id, true); err != nil {
		return fmt.Errorf("publishing event %d: %w", id, err)
	}
	return nil
}

// Deactivate - мягкая деактивация события; записи журнала, привязанные к нему, остаются.
func (s *EventService) Deactivate(ctx context.Context, actor domain.Actor, id int64) error {
	if !Allowed(actor.Role, OpDeactivateEvent) {
		return domain.ErrUnauthorized
	}
	if err := s.eventRepo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivating event %d: %w", id, err)
	}
	return nil
}

type AwardPointsArgs struct {
	// UserID - получатель из списка гостей; nil означает "все гости события".
	UserID *int64
	Amount int64
	Remark string
}

// AwardPoints начисляет баллы гостю или всем гостям события. Доступно организатору
// события или менеджеру. Проверка бюджета и инкремент выданного выполняются атомарно
// под блокировкой строки события: суммарная выдача не может превысить бюджет даже
// при конкурирующих начислениях.
func (s *EventService) AwardPoints(
	ctx context.Context,
	actor domain.Actor,
	eventID int64,
	args AwardPointsArgs,
) ([]domain.Transaction, error) {
	if args.Amount <= 0 {
		return nil, fmt.Errorf("award amount must be positive: %w", domain.ErrInvalidAmount)
	}

	var awarded []domain.Transaction
	err := withConflictRetry(ctx, func() error {
		awarded = nil
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			eventRepo, _, transactionRepo, repoErr := s.repos(tx)
			if repoErr != nil {
				return repoErr
			}

			event, findErr := eventRepo.FindByIDForUpdate(c, eventID)
			if findErr != nil {
				return findErr
			}
			if authzErr := s.canAward(actor, event); authzErr != nil {
				return authzErr
			}
			if !event.Active {
				return fmt.Errorf("event %d is deactivated: %w", eventID, domain.ErrRecordNotFound)
			}

			recipients := event.Guests
			if args.UserID != nil {
				if !event.IsGuest(*args.UserID) {
					return fmt.Errorf("user %d is not a guest of event %d: %w",
						*args.UserID, eventID, domain.ErrRecordNotFound)
				}
				recipients = []int64{*args.UserID}
			}
			if len(recipients) == 0 {
				return fmt.Errorf("event %d has no guests: %w", eventID, domain.ErrRecordNotFound)
			}

			total := args.Amount * int64(len(recipients))
			remaining := event.PointsBudget - event.PointsAwarded
			if total > remaining {
				return domain.NewBudgetExceededError(eventID, total, remaining)
			}

			for _, userID := range recipients {
				transaction, createErr := transactionRepo.Create(c, repoargs.TransactionCreate{
					UserID:    userID,
					Type:      domain.TransactionEvent,
					Amount:    args.Amount,
					RelatedID: &event.ID,
					CreatedBy: actor.ID,
					Remark:    args.Remark,
				})
				if createErr != nil {
					return createErr
				}
				awarded = append(awarded, *transaction)
			}
			return eventRepo.AddAwarded(c, eventID, total)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("awarding points for event %d: %w", eventID, err)
	}
	metrics.TransactionsCreated.WithLabelValues(string(domain.TransactionEvent)).Add(float64(len(awarded)))
	return awarded, nil
}

// canManage - организатор события или менеджер.
func (s *EventService) canManage(actor domain.Actor, event *domain.Event) error {
	if Allowed(actor.Role, OpManageAnyEvent) || event.IsOrganizer(actor.ID) {
		return nil
	}
	return domain.ErrUnauthorized
}

// canAward - организатор события или менеджер.
func (s *EventService) canAward(actor domain.Actor, event *domain.Event) error {
	if Allowed(actor.Role, OpAwardAnyEvent) || event.IsOrganizer(actor.ID) {
		return nil
	}
	return domain.ErrUnauthorized
}

func (s *EventService) repos(tx uow.TX) (EventRepository, UserRepository, TransactionRepository, error) {
	eventRepo, eventRepoErr := uow.GetAs[EventRepository](tx, uow.RepositoryName(repoargs.EventRepoName))
	if eventRepoErr != nil {
		return nil, nil, nil, eventRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, nil, nil, userRepoErr //nolint:wrapcheck
	}
	transactionRepo, transactionRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, nil, nil, transactionRepoErr //nolint:wrapcheck
	}
	return eventRepo, userRepo, transactionRepo, nil
}
