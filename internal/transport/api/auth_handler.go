package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type credentialsParams struct {
	Username string `binding:"required,min=3,max=30" json:"username"`
	Password string `binding:"required,min=6,max=72" json:"password"`
}

// Register создает юзера с ролью regular и сразу авторизует его.
// [POST] /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var params credentialsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials format"})
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), service.RegisterUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": serializeUser(user)})
}

// Login проверяет учетные данные и возвращает новый токен.
// [POST] /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var params credentialsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials format"})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		// не раскрываем, что именно не совпало
		if errors.Is(err, domain.ErrPasswordMissMatch) || errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": serializeUser(user)})
}
