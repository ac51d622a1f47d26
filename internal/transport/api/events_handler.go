package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	eventService EventServicer
}

func NewEventsHandler(eventService EventServicer) *EventsHandler {
	return &EventsHandler{eventService: eventService}
}

type createEventParams struct {
	Name         string    `binding:"required,min=3,max=100" json:"name"`
	StartsAt     time.Time `binding:"required"               json:"startsAt"`
	EndsAt       time.Time `binding:"required"               json:"endsAt"`
	Capacity     int64     `binding:"min=0"                  json:"capacity"`
	PointsBudget int64     `binding:"min=0"                  json:"pointsBudget"`
	Organizers   []int64   `json:"organizers"`
}

// Create создает событие со списком организаторов.
// [POST] /api/events.
func (h *EventsHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params createEventParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid event format"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actor, service.CreateEventArgs{
		Name:         params.Name,
		StartsAt:     params.StartsAt,
		EndsAt:       params.EndsAt,
		Capacity:     params.Capacity,
		PointsBudget: params.PointsBudget,
		Organizers:   params.Organizers,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializeEvent(event))
}

// Show возвращает событие вместе со списками организаторов и гостей.
// [GET] /api/events/:id.
func (h *EventsHandler) Show(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeEvent(event))
}

type memberParams struct {
	UserID int64 `binding:"required,min=1" json:"userId"`
}

// AddGuest записывает юзера гостем события.
// [POST] /api/events/:id/guests.
func (h *EventsHandler) AddGuest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	var params memberParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid guest format"})
		return
	}

	if err := h.eventService.AddGuest(c.Request.Context(), actor, id, params.UserID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveGuest убирает гостя из события.
// [DELETE] /api/events/:id/guests/:userId.
func (h *EventsHandler) RemoveGuest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	userID, userOK := parseIDParam(c, "userId")
	if !userOK {
		return
	}

	if err := h.eventService.RemoveGuest(c.Request.Context(), actor, id, userID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddOrganizer добавляет организатора события.
// [POST] /api/events/:id/organizers.
func (h *EventsHandler) AddOrganizer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	var params memberParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer format"})
		return
	}

	if err := h.eventService.AddOrganizer(c.Request.Context(), actor, id, params.UserID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Publish делает событие видимым.
// [PATCH] /api/events/:id/published.
func (h *EventsHandler) Publish(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	if err := h.eventService.Publish(c.Request.Context(), actor, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate - мягкое удаление события; связанные записи журнала остаются.
// [DELETE] /api/events/:id.
func (h *EventsHandler) Deactivate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	if err := h.eventService.Deactivate(c.Request.Context(), actor, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type awardPointsParams struct {
	// UserID пуст - начисление всем гостям события.
	UserID *int64 `json:"userId"`
	Amount int64  `binding:"required,min=1" json:"amount"`
	Remark string `binding:"max_bytes=255"  json:"remark"`
}

// AwardPoints начисляет баллы гостю или всем гостям события в пределах бюджета.
// [POST] /api/events/:id/transactions.
func (h *EventsHandler) AwardPoints(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	var params awardPointsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid award format"})
		return
	}

	awarded, err := h.eventService.AwardPoints(c.Request.Context(), actor, id, service.AwardPointsArgs{
		UserID: params.UserID,
		Amount: params.Amount,
		Remark: params.Remark,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transactions": serializeTransactions(awarded)})
}
