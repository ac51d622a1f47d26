package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/shopspring/decimal"
)

// TransactionService - ядро платформы: создание транзакций всех типов, баланс,
// обработка погашений и поиск по журналу.
type TransactionService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
	userRepo        UserRepository
	pointsRate      decimal.Decimal
}

func NewTransactionService(u uow.UOW, pointsRate decimal.Decimal) (*TransactionService, error) {
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &TransactionService{
		uow:             u,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		pointsRate:      pointsRate,
	}, nil
}

type PurchaseArgs struct {
	UserID int64
	Spent  decimal.Decimal
	Remark string
}

// CreatePurchase начисляет баллы за покупку. Доступно кассиру и выше. Количество баллов
// выводится из потраченной суммы по курсу pointsRate; сама сумма хранится в записи
// для аудита и в расчете баланса не участвует.
func (s *TransactionService) CreatePurchase(
	ctx context.Context,
	actor domain.Actor,
	args PurchaseArgs,
) (*domain.Transaction, error) {
	if !Allowed(actor.Role, OpCreatePurchase) {
		return nil, domain.ErrUnauthorized
	}
	if !args.Spent.IsPositive() {
		return nil, fmt.Errorf("purchase spent must be positive: %w", domain.ErrInvalidAmount)
	}

	if _, err := s.userRepo.FindByID(ctx, args.UserID); err != nil {
		return nil, fmt.Errorf("creating purchase: %w", err)
	}

	transaction, createErr := s.transactionRepo.Create(ctx, repoargs.TransactionCreate{
		UserID:    args.UserID,
		Type:      domain.TransactionPurchase,
		Amount:    pointsForSpent(args.Spent, s.pointsRate),
		Spent:     args.Spent,
		CreatedBy: actor.ID,
		Remark:    args.Remark,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating purchase: %w", createErr)
	}
	metrics.TransactionsCreated.WithLabelValues(string(domain.TransactionPurchase)).Inc()
	return transaction, nil
}

type AdjustmentArgs struct {
	UserID    int64
	Amount    int64
	RelatedID *int64
	Remark    string

	// AllowNegative разрешает корректировке увести баланс ниже нуля
	// (например, при откате ошибочного начисления).
	AllowNegative bool
}

// CreateAdjustment создает ручную корректировку. Доступно менеджеру и выше. Знак суммы
// произвольный; списывающая корректировка по умолчанию не может увести баланс в минус.
func (s *TransactionService) CreateAdjustment(
	ctx context.Context,
	actor domain.Actor,
	args AdjustmentArgs,
) (*domain.Transaction, error) {
	if !Allowed(actor.Role, OpCreateAdjustment) {
		return nil, domain.ErrUnauthorized
	}
	if args.Amount == 0 {
		return nil, fmt.Errorf("adjustment amount must not be zero: %w", domain.ErrInvalidAmount)
	}

	var transaction *domain.Transaction
	err := withConflictRetry(ctx, func() error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			transactionRepo, userRepo, repoErr := s.repos(tx)
			if repoErr != nil {
				return repoErr
			}

			// Блокировка юзера нужна только списывающей корректировке: она единственная
			// участвует в гонке за остаток баланса.
			if args.Amount < 0 && !args.AllowNegative {
				if lockErr := userRepo.LockByID(c, args.UserID); lockErr != nil {
					return lockErr
				}
				balance, balanceErr := transactionRepo.EffectiveBalance(c, args.UserID)
				if balanceErr != nil {
					return balanceErr
				}
				if balance+args.Amount < 0 {
					return domain.ErrNotEnoughBalance
				}
			} else if _, findErr := userRepo.FindByID(c, args.UserID); findErr != nil {
				return findErr
			}

			var createErr error
			transaction, createErr = transactionRepo.Create(c, repoargs.TransactionCreate{
				UserID:    args.UserID,
				Type:      domain.TransactionAdjustment,
				Amount:    args.Amount,
				RelatedID: args.RelatedID,
				CreatedBy: actor.ID,
				Remark:    args.Remark,
			})
			return createErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating adjustment: %w", err)
	}
	metrics.TransactionsCreated.WithLabelValues(string(domain.TransactionAdjustment)).Inc()
	return transaction, nil
}

type TransferArgs struct {
	SenderID    int64
	RecipientID int64
	Amount      int64
	Remark      string
}

// CreateTransfer переводит баллы между юзерами: либо сам отправитель, либо кассир от его
// имени. Обе ноги перевода создаются в одной транзакции базы, проверка достаточности
// баланса выполняется под блокировкой строки отправителя.
func (s *TransactionService) CreateTransfer(
	ctx context.Context,
	actor domain.Actor,
	args TransferArgs,
) (*domain.Transaction, *domain.Transaction, error) {
	if actor.ID != args.SenderID && !Allowed(actor.Role, OpTransferOnBehalf) {
		return nil, nil, domain.ErrUnauthorized
	}
	if args.Amount <= 0 {
		return nil, nil, fmt.Errorf("transfer amount must be positive: %w", domain.ErrInvalidAmount)
	}
	if args.SenderID == args.RecipientID {
		return nil, nil, fmt.Errorf("transfer to self: %w", domain.ErrOwnerConflict)
	}

	var outgoing, incoming *domain.Transaction
	err := withConflictRetry(ctx, func() error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			transactionRepo, userRepo, repoErr := s.repos(tx)
			if repoErr != nil {
				return repoErr
			}

			if lockErr := userRepo.LockByID(c, args.SenderID); lockErr != nil {
				return lockErr
			}
			if _, findErr := userRepo.FindByID(c, args.RecipientID); findErr != nil {
				return findErr
			}

			balance, balanceErr := transactionRepo.EffectiveBalance(c, args.SenderID)
			if balanceErr != nil {
				return balanceErr
			}
			if balance < args.Amount {
				return domain.ErrNotEnoughBalance
			}

			var pairErr error
			outgoing, incoming, pairErr = transactionRepo.CreatePair(c,
				repoargs.TransactionCreate{
					UserID:    args.SenderID,
					Type:      domain.TransactionTransfer,
					Amount:    -args.Amount,
					CreatedBy: actor.ID,
					Remark:    args.Remark,
				},
				repoargs.TransactionCreate{
					UserID:    args.RecipientID,
					Type:      domain.TransactionTransfer,
					Amount:    args.Amount,
					CreatedBy: actor.ID,
					Remark:    args.Remark,
				},
			)
			return pairErr
		})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating transfer: %w", err)
	}
	metrics.TransactionsCreated.WithLabelValues(string(domain.TransactionTransfer)).Add(2)
	return outgoing, incoming, nil
}

type RedemptionArgs struct {
	UserID int64
	Amount int64
	Remark string
}

// CreateRedemption создает заявку на погашение баллов от имени самого юзера. Баллы
// резервируются сразу: запись хранит отрицательную сумму и учитывается в балансе
// с момента создания, что исключает повторное погашение тех же баллов до обработки
// заявки кассиром. Обработка (ProcessRedemption) баланс повторно не трогает.
func (s *TransactionService) CreateRedemption(
	ctx context.Context,
	actor domain.Actor,
	args RedemptionArgs,
) (*domain.Transaction, error) {
	if actor.ID != args.UserID || !Allowed(actor.Role, OpCreateRedemption) {
		return nil, domain.ErrUnauthorized
	}
	if args.Amount <= 0 {
		return nil, fmt.Errorf("redemption amount must be positive: %w", domain.ErrInvalidAmount)
	}

	var transaction *domain.Transaction
	err := withConflictRetry(ctx, func() error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			transactionRepo, userRepo, repoErr := s.repos(tx)
			if repoErr != nil {
				return repoErr
			}

			if lockErr := userRepo.LockByID(c, args.UserID); lockErr != nil {
				return lockErr
			}
			balance, balanceErr := transactionRepo.EffectiveBalance(c, args.UserID)
			if balanceErr != nil {
				return balanceErr
			}
			if balance < args.Amount {
				return domain.ErrNotEnoughBalance
			}

			var createErr error
			transaction, createErr = transactionRepo.Create(c, repoargs.TransactionCreate{
				UserID:    args.UserID,
				Type:      domain.TransactionRedemption,
				Amount:    -args.Amount,
				CreatedBy: actor.ID,
				Remark:    args.Remark,
			})
			return createErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating redemption: %w", err)
	}
	metrics.TransactionsCreated.WithLabelValues(string(domain.TransactionRedemption)).Inc()
	return transaction, nil
}

// ProcessRedemption помечает заявку на погашение обработанной. Доступно кассиру и выше.
// Повторная обработка возвращает ErrAlreadyProcessed; баланс не меняется - списание
// произошло при создании заявки.
func (s *TransactionService) ProcessRedemption(
	ctx context.Context,
	actor domain.Actor,
	id int64,
) (*domain.Transaction, error) {
	if !Allowed(actor.Role, OpProcessRedemption) {
		return nil, domain.ErrUnauthorized
	}

	var transaction *domain.Transaction
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, _, repoErr := s.repos(tx)
		if repoErr != nil {
			return repoErr
		}

		current, findErr := transactionRepo.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr
		}
		if current.Type != domain.TransactionRedemption {
			return domain.ErrWrongTransactionType
		}
		if current.Processed {
			return domain.ErrAlreadyProcessed
		}

		var setErr error
		transaction, setErr = transactionRepo.SetProcessed(c, id, actor.ID)
		return setErr
	})
	if err != nil {
		return nil, fmt.Errorf("processing redemption %d: %w", id, err)
	}
	metrics.RedemptionsProcessed.Inc()
	return transaction, nil
}

// LookupRedemption возвращает необработанную заявку на погашение для кассира.
func (s *TransactionService) LookupRedemption(
	ctx context.Context,
	actor domain.Actor,
	id int64,
) (*domain.Transaction, error) {
	if !Allowed(actor.Role, OpLookupRedemption) {
		return nil, domain.ErrUnauthorized
	}
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("looking up redemption %d: %w", id, err)
	}
	if transaction.Type != domain.TransactionRedemption {
		return nil, domain.ErrWrongTransactionType
	}
	if transaction.Processed {
		return nil, domain.ErrAlreadyProcessed
	}
	return transaction, nil
}

// SetSuspicious выставляет или снимает флаг подозрительности. Доступно менеджеру и выше.
// Пока флаг стоит, сумма записи исключается из баланса владельца; сама запись не меняется.
// Повторная установка того же значения - no-op.
func (s *TransactionService) SetSuspicious(
	ctx context.Context,
	actor domain.Actor,
	id int64,
	suspicious bool,
) (*domain.Transaction, error) {
	if !Allowed(actor.Role, OpSetSuspicious) {
		return nil, domain.ErrUnauthorized
	}

	var transaction *domain.Transaction
	err := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transactionRepo, _, repoErr := s.repos(tx)
		if repoErr != nil {
			return repoErr
		}

		current, findErr := transactionRepo.FindByIDForUpdate(c, id)
		if findErr != nil {
			return findErr
		}
		if current.Suspicious == suspicious {
			transaction = current
			return nil
		}

		var setErr error
		transaction, setErr = transactionRepo.SetSuspicious(c, id, suspicious)
		if setErr == nil {
			metrics.SuspiciousToggled.Inc()
		}
		return setErr
	})
	if err != nil {
		return nil, fmt.Errorf("setting suspicious on transaction %d: %w", id, err)
	}
	return transaction, nil
}

// Get возвращает запись журнала. Юзер без привилегий видит только свои записи.
func (s *TransactionService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting transaction %d: %w", id, err)
	}
	if transaction.UserID != actor.ID && !Allowed(actor.Role, OpViewAnyRecord) {
		return nil, domain.ErrUnauthorized
	}
	return transaction, nil
}

// Search возвращает страницу журнала и общее число записей под фильтром. Юзер без
// привилегий принудительно ограничен собственной историей.
func (s *TransactionService) Search(
	ctx context.Context,
	actor domain.Actor,
	filter repoargs.TransactionFilter,
	page repoargs.Page,
) ([]domain.Transaction, int64, error) {
	if !Allowed(actor.Role, OpSearchAllRecords) {
		filter.UserID = &actor.ID
	}
	transactions, total, err := s.transactionRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("searching transactions: %w", err)
	}
	return transactions, total, nil
}

// PendingRedemptions возвращает необработанные заявки на погашение для кассирской очереди.
func (s *TransactionService) PendingRedemptions(
	ctx context.Context,
	actor domain.Actor,
	page repoargs.Page,
) ([]domain.Transaction, int64, error) {
	if !Allowed(actor.Role, OpProcessRedemption) {
		return nil, 0, domain.ErrUnauthorized
	}
	redemptionType := domain.TransactionRedemption
	processed := false
	transactions, total, err := s.transactionRepo.Search(ctx, repoargs.TransactionFilter{
		Type:      &redemptionType,
		Processed: &processed,
	}, page)
	if err != nil {
		return nil, 0, fmt.Errorf("listing pending redemptions: %w", err)
	}
	return transactions, total, nil
}

// EffectiveBalance - текущий баланс юзера: сумма всех его не-подозрительных транзакций.
func (s *TransactionService) EffectiveBalance(ctx context.Context, userID int64) (int64, error) {
	balance, err := s.transactionRepo.EffectiveBalance(ctx, userID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return balance, nil
}

func (s *TransactionService) repos(tx uow.TX) (TransactionRepository, UserRepository, error) {
	transactionRepo, transactionRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, nil, transactionRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, nil, userRepoErr //nolint:wrapcheck
	}
	return transactionRepo, userRepo, nil
}
