package service

import (
	"context"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/memrepo"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	uow      *memrepo.UnitOfWork
	services *AppServices

	regular   domain.Actor
	regular2  domain.Actor
	cashier   domain.Actor
	manager   domain.Actor
	superuser domain.Actor
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.uow = memrepo.NewUnitOfWork(memrepo.NewStore())

	var err error
	s.services, err = Factory(s.uow, []byte("super secret key"), decimal.NewFromInt(1))
	s.Require().NoError(err)

	s.regular = s.mustCreateUser(domain.RoleRegular)
	s.regular2 = s.mustCreateUser(domain.RoleRegular)
	s.cashier = s.mustCreateUser(domain.RoleCashier)
	s.manager = s.mustCreateUser(domain.RoleManager)
	s.superuser = s.mustCreateUser(domain.RoleSuperuser)
}

func (s *TransactionServiceTestSuite) mustCreateUser(role domain.RoleType) domain.Actor {
	userRepo, repoErr := uow.GetRepositoryAs[UserRepository](s.uow, uow.RepositoryName(repoargs.UserRepoName))
	s.Require().NoError(repoErr)

	user, err := userRepo.CreateUser(context.Background(), repoargs.CreateUser{
		Username: gofakeit.Username(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Role:     role,
	})
	s.Require().NoError(err)
	return domain.Actor{ID: user.ID, Role: user.Role}
}

// mustCredit начисляет юзеру баллы менеджерской корректировкой.
func (s *TransactionServiceTestSuite) mustCredit(userID, amount int64) {
	_, err := s.services.TransactionService.CreateAdjustment(s.T().Context(), s.manager, AdjustmentArgs{
		UserID: userID,
		Amount: amount,
		Remark: "initial credit",
	})
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) balance(userID int64) int64 {
	balance, err := s.services.TransactionService.EffectiveBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	return balance
}

func (s *TransactionServiceTestSuite) TestCreatePurchase() {
	ctx := s.T().Context()
	svc := s.services.TransactionService

	transaction, err := svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{
		UserID: s.regular.ID,
		Spent:  decimal.NewFromInt(150),
		Remark: "groceries",
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionPurchase, transaction.Type)
	// при курсе 1 балл за единицу начисляется ровно потраченная сумма
	s.Equal(int64(150), transaction.Amount)
	s.Equal(s.cashier.ID, transaction.CreatedBy)
	s.Equal(int64(150), s.balance(s.regular.ID))

	// обычному юзеру покупка недоступна
	_, err = svc.CreatePurchase(ctx, s.regular, PurchaseArgs{UserID: s.regular.ID, Spent: decimal.NewFromInt(10)})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// сумма покупки обязана быть положительной
	_, err = svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{UserID: s.regular.ID, Spent: decimal.Zero})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	// несуществующий юзер
	_, err = svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{UserID: 9999, Spent: decimal.NewFromInt(10)})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *TransactionServiceTestSuite) TestPurchasePointsRate() {
	halfRate, err := Factory(s.uow, []byte("super secret key"), decimal.RequireFromString("0.5"))
	s.Require().NoError(err)

	transaction, purchaseErr := halfRate.TransactionService.CreatePurchase(s.T().Context(), s.cashier, PurchaseArgs{
		UserID: s.regular.ID,
		Spent:  decimal.NewFromInt(101),
	})
	s.Require().NoError(purchaseErr)
	// 101 * 0.5 = 50.5, округление до целого
	s.Equal(int64(51), transaction.Amount)
}

func (s *TransactionServiceTestSuite) TestCreateAdjustment() {
	ctx := s.T().Context()
	svc := s.services.TransactionService

	transaction, err := svc.CreateAdjustment(ctx, s.manager, AdjustmentArgs{UserID: s.regular.ID, Amount: 100})
	s.Require().NoError(err)
	s.Equal(domain.TransactionAdjustment, transaction.Type)
	s.Equal(int64(100), s.balance(s.regular.ID))

	// кассиру корректировки недоступны
	_, err = svc.CreateAdjustment(ctx, s.cashier, AdjustmentArgs{UserID: s.regular.ID, Amount: 10})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// нулевая сумма запрещена
	_, err = svc.CreateAdjustment(ctx, s.manager, AdjustmentArgs{UserID: s.regular.ID, Amount: 0})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	// списывающая корректировка не может увести баланс в минус
	_, err = svc.CreateAdjustment(ctx, s.manager, AdjustmentArgs{UserID: s.regular.ID, Amount: -150})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	s.Equal(int64(100), s.balance(s.regular.ID))

	// с AllowNegative - может
	_, err = svc.CreateAdjustment(ctx, s.manager, AdjustmentArgs{
		UserID:        s.regular.ID,
		Amount:        -150,
		AllowNegative: true,
	})
	s.Require().NoError(err)
	s.Equal(int64(-50), s.balance(s.regular.ID))
}

func (s *TransactionServiceTestSuite) TestCreateTransfer() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	outgoing, incoming, err := svc.CreateTransfer(ctx, s.regular, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular2.ID,
		Amount:      40,
	})
	s.Require().NoError(err)

	// обе ноги перевода связаны и в сумме дают ноль
	s.Equal(int64(-40), outgoing.Amount)
	s.Equal(int64(40), incoming.Amount)
	s.Require().NotNil(outgoing.RelatedID)
	s.Require().NotNil(incoming.RelatedID)
	s.Equal(incoming.ID, *outgoing.RelatedID)
	s.Equal(outgoing.ID, *incoming.RelatedID)
	s.Equal(int64(0), outgoing.Amount+incoming.Amount)

	s.Equal(int64(60), s.balance(s.regular.ID))
	s.Equal(int64(40), s.balance(s.regular2.ID))
}

func (s *TransactionServiceTestSuite) TestCreateTransferValidations() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 50)

	// перевод самому себе
	_, _, err := svc.CreateTransfer(ctx, s.regular, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular.ID,
		Amount:      10,
	})
	s.Require().ErrorIs(err, domain.ErrOwnerConflict)

	// недостаточно баллов: журнал не меняется
	_, _, err = svc.CreateTransfer(ctx, s.regular, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular2.ID,
		Amount:      60,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	s.Equal(int64(50), s.balance(s.regular.ID))
	s.Equal(int64(0), s.balance(s.regular2.ID))

	// обычный юзер не может переводить от чужого имени
	_, _, err = svc.CreateTransfer(ctx, s.regular2, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular2.ID,
		Amount:      10,
	})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// кассир - может
	_, _, err = svc.CreateTransfer(ctx, s.cashier, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular2.ID,
		Amount:      10,
	})
	s.Require().NoError(err)
	s.Equal(int64(40), s.balance(s.regular.ID))
	s.Equal(int64(10), s.balance(s.regular2.ID))

	// отрицательная и нулевая сумма
	for _, amount := range []int64{0, -5} {
		_, _, err = svc.CreateTransfer(ctx, s.regular, TransferArgs{
			SenderID:    s.regular.ID,
			RecipientID: s.regular2.ID,
			Amount:      amount,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *TransactionServiceTestSuite) TestRedemptionLifecycle() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 50)

	// заявка резервирует баллы сразу
	redemption, err := svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 30})
	s.Require().NoError(err)
	s.Equal(int64(-30), redemption.Amount)
	s.False(redemption.Processed)
	s.Equal(int64(20), s.balance(s.regular.ID))

	// обработка меняет только статус, баланс уже списан
	processed, processErr := svc.ProcessRedemption(ctx, s.cashier, redemption.ID)
	s.Require().NoError(processErr)
	s.True(processed.Processed)
	s.Require().NotNil(processed.ProcessedBy)
	s.Equal(s.cashier.ID, *processed.ProcessedBy)
	s.Equal(int64(20), s.balance(s.regular.ID))

	// повторная обработка
	_, err = svc.ProcessRedemption(ctx, s.cashier, redemption.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *TransactionServiceTestSuite) TestCreateRedemptionValidations() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 50)

	// погашение создается только от собственного имени
	_, err := svc.CreateRedemption(ctx, s.regular2, RedemptionArgs{UserID: s.regular.ID, Amount: 10})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	_, err = svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 0})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 60})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	s.Equal(int64(50), s.balance(s.regular.ID))
}

func (s *TransactionServiceTestSuite) TestProcessRedemptionErrors() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	redemption, err := svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 10})
	s.Require().NoError(err)

	// обычному юзеру обработка недоступна
	_, err = svc.ProcessRedemption(ctx, s.regular, redemption.ID)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// несуществующая заявка
	_, err = svc.ProcessRedemption(ctx, s.cashier, 9999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	// запись не того типа
	purchase, purchaseErr := svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{
		UserID: s.regular.ID,
		Spent:  decimal.NewFromInt(10),
	})
	s.Require().NoError(purchaseErr)
	_, err = svc.ProcessRedemption(ctx, s.cashier, purchase.ID)
	s.Require().ErrorIs(err, domain.ErrWrongTransactionType)
}

func (s *TransactionServiceTestSuite) TestConcurrentRedemptions() {
	ctx := context.Background()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	// две параллельные заявки по 80 баллов на балансе 100: пройти должна ровно одна
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 80})
		}(i)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
			insufficient++
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, insufficient)
	s.Equal(int64(20), s.balance(s.regular.ID))
}

func (s *TransactionServiceTestSuite) TestSetSuspicious() {
	ctx := s.T().Context()
	svc := s.services.TransactionService

	purchase, err := svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{
		UserID: s.regular.ID,
		Spent:  decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	s.Equal(int64(100), s.balance(s.regular.ID))

	// пометка исключает запись из баланса
	marked, markErr := svc.SetSuspicious(ctx, s.manager, purchase.ID, true)
	s.Require().NoError(markErr)
	s.True(marked.Suspicious)
	s.Equal(int64(0), s.balance(s.regular.ID))

	// повторная установка того же значения - no-op
	again, againErr := svc.SetSuspicious(ctx, s.manager, purchase.ID, true)
	s.Require().NoError(againErr)
	s.True(again.Suspicious)

	// снятие флага возвращает баллы в баланс
	unmarked, unmarkErr := svc.SetSuspicious(ctx, s.manager, purchase.ID, false)
	s.Require().NoError(unmarkErr)
	s.False(unmarked.Suspicious)
	s.Equal(int64(100), s.balance(s.regular.ID))

	// кассиру флаг недоступен
	_, err = svc.SetSuspicious(ctx, s.cashier, purchase.ID, true)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	_, err = svc.SetSuspicious(ctx, s.manager, 9999, true)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *TransactionServiceTestSuite) TestGet() {
	ctx := s.T().Context()
	svc := s.services.TransactionService

	purchase, err := svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{
		UserID: s.regular.ID,
		Spent:  decimal.NewFromInt(10),
	})
	s.Require().NoError(err)

	// владелец видит свою запись
	got, getErr := svc.Get(ctx, s.regular, purchase.ID)
	s.Require().NoError(getErr)
	s.Equal(purchase.ID, got.ID)

	// чужой обычный юзер - нет
	_, err = svc.Get(ctx, s.regular2, purchase.ID)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// кассир видит любую запись
	_, err = svc.Get(ctx, s.cashier, purchase.ID)
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TestSearch() {
	ctx := s.T().Context()
	svc := s.services.TransactionService

	for range 3 {
		_, err := svc.CreatePurchase(ctx, s.cashier, PurchaseArgs{
			UserID: s.regular.ID,
			Spent:  decimal.NewFromInt(10),
		})
		s.Require().NoError(err)
	}
	s.mustCredit(s.regular2.ID, 100)

	// менеджер видит весь журнал
	all, total, err := svc.Search(ctx, s.manager, repoargs.TransactionFilter{}, repoargs.Page{})
	s.Require().NoError(err)
	s.Equal(int64(4), total)
	s.Len(all, 4)

	// порядок - по id по убыванию
	for i := 1; i < len(all); i++ {
		s.Greater(all[i-1].ID, all[i].ID)
	}

	// обычный юзер принудительно ограничен своей историей, даже с чужим фильтром
	own, ownTotal, ownErr := svc.Search(ctx, s.regular, repoargs.TransactionFilter{
		UserID: &s.regular2.ID,
	}, repoargs.Page{})
	s.Require().NoError(ownErr)
	s.Equal(int64(3), ownTotal)
	for _, transaction := range own {
		s.Equal(s.regular.ID, transaction.UserID)
	}

	// фильтр по типу
	adjustmentType := domain.TransactionAdjustment
	adjustments, adjustmentsTotal, adjErr := svc.Search(ctx, s.manager, repoargs.TransactionFilter{
		Type: &adjustmentType,
	}, repoargs.Page{})
	s.Require().NoError(adjErr)
	s.Equal(int64(1), adjustmentsTotal)
	s.Len(adjustments, 1)

	// пагинация
	page2, pagedTotal, pageErr := svc.Search(ctx, s.manager, repoargs.TransactionFilter{}, repoargs.Page{
		Number: 2,
		Size:   3,
	})
	s.Require().NoError(pageErr)
	s.Equal(int64(4), pagedTotal)
	s.Len(page2, 1)
}

func (s *TransactionServiceTestSuite) TestSearchRelatedIDNull() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	_, _, err := svc.CreateTransfer(ctx, s.regular, TransferArgs{
		SenderID:    s.regular.ID,
		RecipientID: s.regular2.ID,
		Amount:      10,
	})
	s.Require().NoError(err)

	// сентинел "related_id IS NULL" отбирает только несвязанные записи
	unrelated, total, searchErr := svc.Search(ctx, s.manager, repoargs.TransactionFilter{
		RelatedIDNull: true,
	}, repoargs.Page{})
	s.Require().NoError(searchErr)
	s.Equal(int64(1), total)
	s.Require().Len(unrelated, 1)
	s.Nil(unrelated[0].RelatedID)
}

func (s *TransactionServiceTestSuite) TestPendingRedemptions() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	first, err := svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 10})
	s.Require().NoError(err)
	second, secondErr := svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 20})
	s.Require().NoError(secondErr)

	_, processErr := svc.ProcessRedemption(ctx, s.cashier, first.ID)
	s.Require().NoError(processErr)

	// в очереди остается только необработанная заявка
	pending, total, pendingErr := svc.PendingRedemptions(ctx, s.cashier, repoargs.Page{})
	s.Require().NoError(pendingErr)
	s.Equal(int64(1), total)
	s.Require().Len(pending, 1)
	s.Equal(second.ID, pending[0].ID)

	// обычному юзеру очередь недоступна
	_, _, err = svc.PendingRedemptions(ctx, s.regular, repoargs.Page{})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)
}

func (s *TransactionServiceTestSuite) TestLookupRedemption() {
	ctx := s.T().Context()
	svc := s.services.TransactionService
	s.mustCredit(s.regular.ID, 100)

	redemption, err := svc.CreateRedemption(ctx, s.regular, RedemptionArgs{UserID: s.regular.ID, Amount: 10})
	s.Require().NoError(err)

	found, lookupErr := svc.LookupRedemption(ctx, s.cashier, redemption.ID)
	s.Require().NoError(lookupErr)
	s.Equal(redemption.ID, found.ID)

	// обычному юзеру поиск заявок недоступен
	_, err = svc.LookupRedemption(ctx, s.regular, redemption.ID)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// обработанная заявка в поиске не отдается
	_, processErr := svc.ProcessRedemption(ctx, s.cashier, redemption.ID)
	s.Require().NoError(processErr)
	_, err = svc.LookupRedemption(ctx, s.cashier, redemption.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}
