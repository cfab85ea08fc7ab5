package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvc
}

func registerTransactionRoutes(rg *gin.RouterGroup, svc portssvc.TransactionSvc) {
	h := &transactionHandler{transactionService: svc}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.POST("/categorize", h.categorize)
	}
}

// createTransaction godoc
// @Summary Record an income or expense
// @Description Stores the transaction and moves the account balance. An empty category is suggested automatically.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account or counterparty not found"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("account_id", req.AccountID),
		slog.String("direction", string(req.Direction)))

	txn, account, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Account:     dto.ToAccountResponse(account),
	})
}

// listTransactions godoc
// @Summary List transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Bad query or token"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	res, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, res)
}

// categorize godoc
// @Summary Suggest a category for a description
// @Description Advisory only. Always answers with a known category, "Other" when unsure.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   request body dto.CategorizeRequest true "Description"
// @Success 200 {object} dto.CategorizeResponse
// @Router /transactions/categorize [post]
func (h *transactionHandler) categorize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategorizeResponse{
		Category: h.transactionService.SuggestCategory(c.Request.Context(), req.Description),
	})
}
