package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
	"github.com/fsdevblog/groph-points/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionsHandler struct {
	transactionService TransactionServicer
}

func NewTransactionsHandler(transactionService TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{transactionService: transactionService}
}

type createTransactionParams struct {
	Type string `binding:"required,oneof=purchase adjustment transfer redemption" json:"type"`

	// UserID - владелец записи; для transfer это отправитель. По умолчанию текущий юзер.
	UserID        *int64          `json:"userId"`
	RecipientID   *int64          `json:"recipientId"`
	Amount        int64           `json:"amount"`
	Spent         decimal.Decimal `json:"spent"`
	RelatedID     *int64          `json:"relatedId"`
	AllowNegative bool            `json:"allowNegative"`
	Remark        string          `binding:"max_bytes=255"    json:"remark"`
}

// Create создает транзакцию. Тип определяет и форму параметров, и требуемую роль:
// проверки прав выполняет сервисный слой.
// [POST] /api/transactions.
func (h *TransactionsHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params createTransactionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction format"})
		return
	}

	userID := actor.ID
	if params.UserID != nil {
		userID = *params.UserID
	}

	ctx := c.Request.Context()
	switch domain.TransactionType(params.Type) {
	case domain.TransactionPurchase:
		transaction, err := h.transactionService.CreatePurchase(ctx, actor, service.PurchaseArgs{
			UserID: userID,
			Spent:  params.Spent,
			Remark: params.Remark,
		})
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, serializeTransaction(transaction))
	case domain.TransactionAdjustment:
		transaction, err := h.transactionService.CreateAdjustment(ctx, actor, service.AdjustmentArgs{
			UserID:        userID,
			Amount:        params.Amount,
			RelatedID:     params.RelatedID,
			Remark:        params.Remark,
			AllowNegative: params.AllowNegative,
		})
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, serializeTransaction(transaction))
	case domain.TransactionTransfer:
		if params.RecipientID == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Recipient is required"})
			return
		}
		outgoing, incoming, err := h.transactionService.CreateTransfer(ctx, actor, service.TransferArgs{
			SenderID:    userID,
			RecipientID: *params.RecipientID,
			Amount:      params.Amount,
			Remark:      params.Remark,
		})
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"outgoing": serializeTransaction(outgoing),
			"incoming": serializeTransaction(incoming),
		})
	case domain.TransactionRedemption:
		transaction, err := h.transactionService.CreateRedemption(ctx, actor, service.RedemptionArgs{
			UserID: userID,
			Amount: params.Amount,
			Remark: params.Remark,
		})
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, serializeTransaction(transaction))
	default:
		// event-транзакции создаются только через начисления события
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unsupported transaction type"})
	}
}

type searchTransactionsParams struct {
	UserID      *int64     `form:"userId"`
	Type        *string    `binding:"omitempty,oneof=purchase adjustment transfer redemption event" form:"type"`
	Amount      *int64     `form:"amount"`
	AmountOp    string     `binding:"omitempty,oneof=gte lte"                                       form:"amountOp"`
	RelatedID   *string    `form:"relatedId"`
	Suspicious  *bool      `form:"suspicious"`
	Processed   *bool      `form:"processed"`
	CreatedBy   *int64     `form:"createdBy"`
	CreatedFrom *time.Time `form:"createdFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedTo   *time.Time `form:"createdTo"   time_format:"2006-01-02T15:04:05Z07:00"`
	Page        uint       `form:"page"`
	PageSize    uint       `binding:"omitempty,max=100" form:"pageSize"`
}

func (p *searchTransactionsParams) toFilter() (repoargs.TransactionFilter, bool) {
	filter := repoargs.TransactionFilter{
		UserID:      p.UserID,
		Amount:      p.Amount,
		AmountOp:    repoargs.AmountOperator(p.AmountOp),
		Suspicious:  p.Suspicious,
		Processed:   p.Processed,
		CreatedBy:   p.CreatedBy,
		CreatedFrom: p.CreatedFrom,
		CreatedTo:   p.CreatedTo,
	}
	if p.Type != nil {
		transactionType := domain.TransactionType(*p.Type)
		filter.Type = &transactionType
	}
	if p.RelatedID != nil {
		// строка "null" - явный запрос записей без связи
		if *p.RelatedID == "null" {
			filter.RelatedIDNull = true
		} else {
			relatedID, err := parseInt64(*p.RelatedID)
			if err != nil {
				return filter, false
			}
			filter.RelatedID = &relatedID
		}
	}
	return filter, true
}

// Index возвращает страницу журнала, отсортированную по id по убыванию. Юзер без
// привилегий видит только собственную историю независимо от фильтра.
// [GET] /api/transactions.
func (h *TransactionsHandler) Index(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params searchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid search params"})
		return
	}
	filter, filterOK := params.toFilter()
	if !filterOK {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid relatedId"})
		return
	}

	page := repoargs.Page{Number: params.Page, Size: params.PageSize}.Normalize()
	transactions, total, err := h.transactionService.Search(c.Request.Context(), actor, filter, page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse{
		Items: serializeTransactions(transactions),
		Total: total,
		Page:  int(page.Number),
		Size:  int(page.Size),
	})
}

// Show возвращает одну запись журнала.
// [GET] /api/transactions/:id.
func (h *TransactionsHandler) Show(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	transaction, err := h.transactionService.Get(c.Request.Context(), actor, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeTransaction(transaction))
}

type setSuspiciousParams struct {
	Suspicious *bool `binding:"required" json:"suspicious"`
}

// SetSuspicious выставляет или снимает флаг подозрительности записи.
// [PATCH] /api/transactions/:id/suspicious.
func (h *TransactionsHandler) SetSuspicious(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	var params setSuspiciousParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Suspicious flag is required"})
		return
	}

	transaction, err := h.transactionService.SetSuspicious(c.Request.Context(), actor, id, *params.Suspicious)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeTransaction(transaction))
}

type setProcessedParams struct {
	Processed *bool `binding:"required" json:"processed"`
}

// Process помечает заявку на погашение обработанной. Снять отметку нельзя.
// [PATCH] /api/transactions/:id/processed.
func (h *TransactionsHandler) Process(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	var params setProcessedParams
	if err := c.ShouldBindJSON(&params); err != nil || !*params.Processed {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Processed status must be true"})
		return
	}

	transaction, err := h.transactionService.ProcessRedemption(c.Request.Context(), actor, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeTransaction(transaction))
}

// PendingRedemptions возвращает очередь необработанных заявок на погашение.
// [GET] /api/transactions/pending-redemptions.
func (h *TransactionsHandler) PendingRedemptions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var params searchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid search params"})
		return
	}

	page := repoargs.Page{Number: params.Page, Size: params.PageSize}.Normalize()
	transactions, total, err := h.transactionService.PendingRedemptions(c.Request.Context(), actor, page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse{
		Items: serializeTransactions(transactions),
		Total: total,
		Page:  int(page.Number),
		Size:  int(page.Size),
	})
}

// LookupRedemption возвращает необработанную заявку для экрана кассира.
// [GET] /api/transactions/lookup-redemption/:id.
func (h *TransactionsHandler) LookupRedemption(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, idOK := parseIDParam(c, "id")
	if !idOK {
		return
	}
	transaction, err := h.transactionService.LookupRedemption(c.Request.Context(), actor, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeTransaction(transaction))
}
