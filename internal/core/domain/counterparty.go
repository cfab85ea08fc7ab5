package domain

// Customer is a party that pays the business. Referenced by income transactions.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AuditFields
}

// Vendor is a party the business pays. Referenced by expense transactions.
type Vendor struct {
	VendorID      string `json:"vendorID"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Code          string `json:"code,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	PaymentTerms  string `json:"paymentTerms,omitempty"`
	AuditFields
}
