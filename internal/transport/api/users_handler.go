package api

import (
	"net/http"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	userService        UserServicer
	transactionService TransactionServicer
}

func NewUsersHandler(userService UserServicer, transactionService TransactionServicer) *UsersHandler {
	return &UsersHandler{userService: userService, transactionService: transactionService}
}

type createUserParams struct {
	Username string `binding:"required,min=3,max=30" json:"username"`
	Password string `binding:"required,min=6,max=72" json:"password"`
	Role     string `binding:"omitempty,oneof=regular cashier manager superuser" json:"role"`
	Verified bool   `json:"verified"`
}

// Create создает юзера от имени персонала (кассир и выше; роли выше regular - только суперюзер).
// [POST] /api/users.
func (h *UsersHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params createUserParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user format"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), actor, service.CreateUserArgs{
		Username: params.Username,
		Password: params.Password,
		Role:     domain.RoleType(params.Role),
		Verified: params.Verified,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializeUser(user))
}

// Me возвращает профиль текущего юзера.
// [GET] /api/users/me.
func (h *UsersHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeUser(user))
}

// Balance возвращает текущий баланс юзера: сумму его не-подозрительных транзакций.
// [GET] /api/users/me/balance.
func (h *UsersHandler) Balance(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	balance, err := h.transactionService.EffectiveBalance(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
