package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
)

// AccountNumberingRule reserves a code range of a fixed width for an account group.
type AccountNumberingRule struct {
	RuleID    string `json:"ruleID"`
	GroupName string `json:"groupName"`
	Digits    int    `json:"digits"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// Validate checks that the range is ordered and both ends have the declared width.
func (r AccountNumberingRule) Validate() error {
	if strings.TrimSpace(r.GroupName) == "" {
		return fmt.Errorf("%w: group name is required", apperrors.ErrValidation)
	}
	if r.Digits <= 0 {
		return fmt.Errorf("%w: digits must be positive", apperrors.ErrValidation)
	}
	if r.Start > r.End {
		return fmt.Errorf("%w: range start %d is after end %d", apperrors.ErrValidation, r.Start, r.End)
	}
	if len(strconv.Itoa(r.Start)) != r.Digits || len(strconv.Itoa(r.End)) != r.Digits {
		return fmt.Errorf("%w: range %d-%d must use %d digits", apperrors.ErrValidation, r.Start, r.End, r.Digits)
	}
	return nil
}

// Contains reports whether code lies in the rule's range.
func (r AccountNumberingRule) Contains(code int) bool {
	return code >= r.Start && code <= r.End
}
