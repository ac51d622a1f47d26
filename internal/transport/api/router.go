package api

import (
	"github.com/fsdevblog/groph-points/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	RouteGroup    = "/api"
	RegisterRoute = "/auth/register"
	LoginRoute    = "/auth/login"

	UsersRoute          = "/users"
	MeRoute             = "/users/me"
	BalanceRoute        = "/users/me/balance"
	MeTransactionsRoute = "/users/me/transactions"

	TransactionsRoute          = "/transactions"
	TransactionRoute           = "/transactions/:id"
	TransactionSuspiciousRoute = "/transactions/:id/suspicious"
	TransactionProcessedRoute  = "/transactions/:id/processed"
	PendingRedemptionsRoute    = "/transactions/pending-redemptions"
	LookupRedemptionRoute      = "/transactions/lookup-redemption/:id"

	EventsRoute            = "/events"
	EventRoute             = "/events/:id"
	EventPublishedRoute    = "/events/:id/published"
	EventGuestsRoute       = "/events/:id/guests"
	EventGuestRoute        = "/events/:id/guests/:userId"
	EventOrganizersRoute   = "/events/:id/organizers"
	EventTransactionsRoute = "/events/:id/transactions"

	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	TransactionService TransactionServicer
	EventService       EventServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(args.UserService)
	usersHandler := NewUsersHandler(args.UserService, args.TransactionService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)
	eventsHandler := NewEventsHandler(args.EventService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(UsersRoute, usersHandler.Create)
	api.GET(MeRoute, usersHandler.Me)
	api.GET(BalanceRoute, usersHandler.Balance)
	// транзакции от собственного имени: userId в теле опускается
	api.POST(MeTransactionsRoute, transactionsHandler.Create)

	api.POST(TransactionsRoute, transactionsHandler.Create)
	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.GET(PendingRedemptionsRoute, transactionsHandler.PendingRedemptions)
	api.GET(LookupRedemptionRoute, transactionsHandler.LookupRedemption)
	api.GET(TransactionRoute, transactionsHandler.Show)
	api.PATCH(TransactionSuspiciousRoute, transactionsHandler.SetSuspicious)
	api.PATCH(TransactionProcessedRoute, transactionsHandler.Process)

	api.POST(EventsRoute, eventsHandler.Create)
	api.GET(EventRoute, eventsHandler.Show)
	api.DELETE(EventRoute, eventsHandler.Deactivate)
	api.PATCH(EventPublishedRoute, eventsHandler.Publish)
	api.POST(EventGuestsRoute, eventsHandler.AddGuest)
	api.DELETE(EventGuestRoute, eventsHandler.RemoveGuest)
	api.POST(EventOrganizersRoute, eventsHandler.AddOrganizer)
	api.POST(EventTransactionsRoute, eventsHandler.AwardPoints)

	return r
}
