package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// currentActor достает domain.Actor, записанный auth-middleware. Отсутствие актора в
// защищенном маршруте - ошибка конфигурации роутера, отвечаем 500.
func currentActor(c *gin.Context) (domain.Actor, bool) {
	val, exists := c.Get(middlewares.CurrentActorKey)
	if !exists {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("current actor is not set")).
			SetType(gin.ErrorTypePrivate)
		return domain.Actor{}, false
	}
	actor, ok := val.(domain.Actor)
	if !ok {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("invalid current actor type")).
			SetType(gin.ErrorTypePrivate)
		return domain.Actor{}, false
	}
	return actor, true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64) //nolint:wrapcheck
}

// abortWithServiceError переводит ошибки доменного слоя в http статусы.
func abortWithServiceError(c *gin.Context, err error) {
	var budgetErr *domain.BudgetExceededError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrDuplicateKey):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, domain.ErrInvalidAmount):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
	case errors.Is(err, domain.ErrNotEnoughBalance):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
	case errors.Is(err, domain.ErrOwnerConflict):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Cannot transfer to self"})
	case errors.Is(err, domain.ErrWrongTransactionType):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Wrong transaction type"})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Already processed"})
	case errors.As(err, &budgetErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": budgetErr.Error()})
	case errors.Is(err, domain.ErrEventFull):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Event is full"})
	case errors.Is(err, domain.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Conflict, retry later"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
