package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/memrepo"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	uow      *memrepo.UnitOfWork
	services *AppServices

	organizer domain.Actor
	guest     domain.Actor
	guest2    domain.Actor
	outsider  domain.Actor
	manager   domain.Actor
}

func TestEventServiceSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

func (s *EventServiceTestSuite) SetupTest() {
	s.uow = memrepo.NewUnitOfWork(memrepo.NewStore())

	var err error
	s.services, err = Factory(s.uow, []byte("super secret key"), decimal.NewFromInt(1))
	s.Require().NoError(err)

	s.organizer = s.mustCreateUser(domain.RoleRegular)
	s.guest = s.mustCreateUser(domain.RoleRegular)
	s.guest2 = s.mustCreateUser(domain.RoleRegular)
	s.outsider = s.mustCreateUser(domain.RoleRegular)
	s.manager = s.mustCreateUser(domain.RoleManager)
}

func (s *EventServiceTestSuite) mustCreateUser(role domain.RoleType) domain.Actor {
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

func (s *EventServiceTestSuite) mustCreateEvent(budget, capacity int64) *domain.Event {
	event, err := s.services.EventService.CreateEvent(s.T().Context(), s.manager, CreateEventArgs{
		Name:         gofakeit.ProductName(),
		StartsAt:     time.Now(),
		EndsAt:       time.Now().Add(2 * time.Hour),
		Capacity:     capacity,
		PointsBudget: budget,
		Organizers:   []int64{s.organizer.ID},
	})
	s.Require().NoError(err)
	return event
}

func (s *EventServiceTestSuite) balance(userID int64) int64 {
	balance, err := s.services.TransactionService.EffectiveBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	return balance
}

func (s *EventServiceTestSuite) TestCreateEvent() {
	ctx := s.T().Context()
	svc := s.services.EventService

	event := s.mustCreateEvent(1000, 50)
	s.Equal(int64(1000), event.PointsBudget)
	s.Equal(int64(0), event.PointsAwarded)
	s.True(event.Active)
	s.False(event.Published)
	s.True(event.IsOrganizer(s.organizer.ID))

	// обычному юзеру создание недоступно
	_, err := svc.CreateEvent(ctx, s.outsider, CreateEventArgs{
		Name:     "party",
		StartsAt: time.Now(),
		EndsAt:   time.Now().Add(time.Hour),
	})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// окончание должно быть позже начала
	_, err = svc.CreateEvent(ctx, s.manager, CreateEventArgs{
		Name:     "party",
		StartsAt: time.Now().Add(time.Hour),
		EndsAt:   time.Now(),
	})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	// несуществующий организатор откатывает создание целиком
	_, err = svc.CreateEvent(ctx, s.manager, CreateEventArgs{
		Name:       "party",
		StartsAt:   time.Now(),
		EndsAt:     time.Now().Add(time.Hour),
		Organizers: []int64{9999},
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *EventServiceTestSuite) TestGuestManagement() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(1000, 2)

	// организатор добавляет гостей
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest2.ID))

	// вместимость исчерпана
	err := svc.AddGuest(ctx, s.organizer, event.ID, s.outsider.ID)
	s.Require().ErrorIs(err, domain.ErrEventFull)

	// посторонний юзер событием не управляет
	err = svc.AddGuest(ctx, s.outsider, event.ID, s.outsider.ID)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	// удаление гостя освобождает место
	s.Require().NoError(svc.RemoveGuest(ctx, s.organizer, event.ID, s.guest2.ID))
	s.Require().NoError(svc.AddGuest(ctx, s.manager, event.ID, s.outsider.ID))

	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.True(got.IsGuest(s.guest.ID))
	s.False(got.IsGuest(s.guest2.ID))
	s.True(got.IsGuest(s.outsider.ID))
}

func (s *EventServiceTestSuite) TestAddOrganizer() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(1000, 0)

	// добавлять организаторов может только менеджер и выше
	err := svc.AddOrganizer(ctx, s.organizer, event.ID, s.outsider.ID)
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	s.Require().NoError(svc.AddOrganizer(ctx, s.manager, event.ID, s.outsider.ID))
	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.True(got.IsOrganizer(s.outsider.ID))
}

func (s *EventServiceTestSuite) TestPublishAndDeactivate() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(1000, 0)

	s.Require().ErrorIs(svc.Publish(ctx, s.organizer, event.ID), domain.ErrUnauthorized)
	s.Require().NoError(svc.Publish(ctx, s.manager, event.ID))

	s.Require().ErrorIs(svc.Deactivate(ctx, s.organizer, event.ID), domain.ErrUnauthorized)
	s.Require().NoError(svc.Deactivate(ctx, s.manager, event.ID))

	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.True(got.Published)
	s.False(got.Active)

	// деактивированное событие баллы не начисляет
	_, err := svc.AwardPoints(ctx, s.manager, event.ID, AwardPointsArgs{Amount: 10})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *EventServiceTestSuite) TestAwardPointsSingleGuest() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(100, 0)
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))

	awarded, err := svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{
		UserID: &s.guest.ID,
		Amount: 40,
		Remark: "quiz winner",
	})
	s.Require().NoError(err)
	s.Require().Len(awarded, 1)
	s.Equal(domain.TransactionEvent, awarded[0].Type)
	s.Require().NotNil(awarded[0].RelatedID)
	s.Equal(event.ID, *awarded[0].RelatedID)
	s.Equal(int64(40), s.balance(s.guest.ID))

	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(40), got.PointsAwarded)
}

func (s *EventServiceTestSuite) TestAwardPointsAllGuests() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(100, 0)
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest2.ID))

	awarded, err := svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{Amount: 30})
	s.Require().NoError(err)
	s.Len(awarded, 2)
	s.Equal(int64(30), s.balance(s.guest.ID))
	s.Equal(int64(30), s.balance(s.guest2.ID))

	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(60), got.PointsAwarded)
}

func (s *EventServiceTestSuite) TestAwardPointsBudget() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(100, 0)
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest2.ID))

	// 2 гостя по 60 - это 120 при бюджете 100: никому ничего не начисляется
	_, err := svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{Amount: 60})
	s.Require().ErrorIs(err, domain.ErrBudgetExceeded)

	var budgetErr *domain.BudgetExceededError
	s.Require().ErrorAs(err, &budgetErr)

	s.Equal(int64(0), s.balance(s.guest.ID))
	s.Equal(int64(0), s.balance(s.guest2.ID))
	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(0), got.PointsAwarded)
}

func (s *EventServiceTestSuite) TestAwardPointsValidations() {
	ctx := s.T().Context()
	svc := s.services.EventService
	event := s.mustCreateEvent(100, 0)
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))

	// сумма начисления должна быть положительной
	_, err := svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{Amount: 0})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	// получатель обязан быть гостем
	_, err = svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{UserID: &s.outsider.ID, Amount: 10})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	// начислять может организатор или менеджер, но не гость
	_, err = svc.AwardPoints(ctx, s.guest, event.ID, AwardPointsArgs{Amount: 10})
	s.Require().ErrorIs(err, domain.ErrUnauthorized)

	_, err = svc.AwardPoints(ctx, s.manager, event.ID, AwardPointsArgs{UserID: &s.guest.ID, Amount: 10})
	s.Require().NoError(err)
}

func (s *EventServiceTestSuite) TestConcurrentAwardsRespectBudget() {
	ctx := context.Background()
	svc := s.services.EventService
	event := s.mustCreateEvent(100, 0)
	s.Require().NoError(svc.AddGuest(ctx, s.organizer, event.ID, s.guest.ID))

	// три параллельных начисления по 60 на бюджете 100: пройти должно ровно одно
	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AwardPoints(ctx, s.organizer, event.ID, AwardPointsArgs{
				UserID: &s.guest.ID,
				Amount: 60,
			})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.Require().ErrorIs(err, domain.ErrBudgetExceeded)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(int64(60), s.balance(s.guest.ID))

	got, getErr := svc.Get(ctx, event.ID)
	s.Require().NoError(getErr)
	s.Equal(int64(60), got.PointsAwarded)
}
