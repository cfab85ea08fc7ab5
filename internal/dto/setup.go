package dto

import (
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// CreateYearbookRequest opens a new fiscal year.
type CreateYearbookRequest struct {
	Year      int    `json:"year" binding:"required,gte=1900,lte=9999"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// YearbookResponse defines the data returned for a yearbook.
type YearbookResponse struct {
	YearbookID string                `json:"yearbookID"`
	Year       int                   `json:"year"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	Status     domain.YearbookStatus `json:"status"`
}

// ToYearbookResponse converts a domain.Yearbook.
func ToYearbookResponse(y *domain.Yearbook) YearbookResponse {
	return YearbookResponse{
		YearbookID: y.YearbookID,
		Year:       y.Year,
		StartDate:  y.StartDate.Format(domain.DateLayout),
		EndDate:    y.EndDate.Format(domain.DateLayout),
		Status:     y.Status,
	}
}

// ToYearbookResponses converts a slice of yearbooks.
func ToYearbookResponses(ys []domain.Yearbook) []YearbookResponse {
	res := make([]YearbookResponse, len(ys))
	for i := range ys {
		res[i] = ToYearbookResponse(&ys[i])
	}
	return res
}

// NumberingRuleRequest is one code range.
type NumberingRuleRequest struct {
	GroupName string `json:"groupName" binding:"required"`
	Digits    int    `json:"digits" binding:"required,gt=0,lte=12"`
	Start     int    `json:"start" binding:"required,gt=0"`
	End       int    `json:"end" binding:"required,gtefield=Start"`
}

// ReplaceNumberingRulesRequest replaces every rule sharing the batch's digit count.
type ReplaceNumberingRulesRequest struct {
	Rules []NumberingRuleRequest `json:"rules" binding:"required,min=1,dive"`
}

// ToDomainRules converts the batch. IDs are assigned by the store.
func (r ReplaceNumberingRulesRequest) ToDomainRules() []domain.AccountNumberingRule {
	rules := make([]domain.AccountNumberingRule, len(r.Rules))
	for i, rr := range r.Rules {
		rules[i] = domain.AccountNumberingRule{
			GroupName: rr.GroupName,
			Digits:    rr.Digits,
			Start:     rr.Start,
			End:       rr.End,
		}
	}
	return rules
}

// CreateCustomerRequest defines a new customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateVendorRequest defines a new vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category"`
	Code          string `json:"code"`
	ContactPerson string `json:"contactPerson"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	PaymentTerms  string `json:"paymentTerms"`
}
