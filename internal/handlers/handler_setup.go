package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

type setupHandler struct {
	yearbookService portssvc.YearbookSvc
	setupService    portssvc.SetupSvc
}

func registerSetupRoutes(rg *gin.RouterGroup, yearbooks portssvc.YearbookSvc, setup portssvc.SetupSvc) {
	h := &setupHandler{yearbookService: yearbooks, setupService: setup}

	rg.POST("/yearbooks", h.createYearbook)
	rg.GET("/yearbooks", h.listYearbooks)

	rg.PUT("/account-numbering", h.replaceNumberingRules)
	rg.GET("/account-numbering", h.listNumberingRules)

	rg.POST("/customers", h.createCustomer)
	rg.GET("/customers", h.listCustomers)
	rg.POST("/vendors", h.createVendor)
	rg.GET("/vendors", h.listVendors)
}

// createYearbook godoc
// @Summary Open a new yearbook
// @Description The previously open yearbook is closed.
// @Tags setup
// @Accept  json
// @Produce  json
// @Param   yearbook body dto.CreateYearbookRequest true "Yearbook"
// @Success 201 {object} dto.YearbookResponse
// @Failure 409 {object} map[string]string "Year already exists"
// @Router /yearbooks [post]
func (h *setupHandler) createYearbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateYearbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	yb, err := h.yearbookService.CreateYearbook(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create yearbook")
		return
	}
	c.JSON(http.StatusCreated, dto.ToYearbookResponse(yb))
}

// listYearbooks godoc
// @Summary List yearbooks
// @Tags setup
// @Produce  json
// @Success 200 {array} dto.YearbookResponse
// @Router /yearbooks [get]
func (h *setupHandler) listYearbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ybs, err := h.yearbookService.ListYearbooks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list yearbooks")
		return
	}
	c.JSON(http.StatusOK, dto.ToYearbookResponses(ybs))
}

// replaceNumberingRules godoc
// @Summary Replace the numbering rules of one code width
// @Description Every rule in the batch must use the same number of digits.
// @Tags setup
// @Accept  json
// @Produce  json
// @Param   rules body dto.ReplaceNumberingRulesRequest true "Rules"
// @Success 200 {array} domain.AccountNumberingRule
// @Router /account-numbering [put]
func (h *setupHandler) replaceNumberingRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceNumberingRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	rules, err := h.setupService.ReplaceNumberingRules(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to replace numbering rules")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// listNumberingRules godoc
// @Summary List numbering rules ordered by range start
// @Tags setup
// @Produce  json
// @Success 200 {array} domain.AccountNumberingRule
// @Router /account-numbering [get]
func (h *setupHandler) listNumberingRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rules, err := h.setupService.ListNumberingRules(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list numbering rules")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// createCustomer godoc
// @Summary Add a customer
// @Tags setup
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} domain.Customer
// @Router /customers [post]
func (h *setupHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	customer, err := h.setupService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags setup
// @Produce  json
// @Success 200 {array} domain.Customer
// @Router /customers [get]
func (h *setupHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customers, err := h.setupService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// createVendor godoc
// @Summary Add a vendor
// @Tags setup
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor"
// @Success 201 {object} domain.Vendor
// @Router /vendors [post]
func (h *setupHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	vendor, err := h.setupService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// listVendors godoc
// @Summary List vendors
// @Tags setup
// @Produce  json
// @Success 200 {array} domain.Vendor
// @Router /vendors [get]
func (h *setupHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendors, err := h.setupService.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, vendors)
}
