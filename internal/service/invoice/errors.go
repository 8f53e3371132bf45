package invoice

import (
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrInvalidInvoiceID     = fmt.Errorf("invalid invoice id: %w", entities.ErrValidation)
	ErrInvalidCustomerID    = fmt.Errorf("invalid customer id: %w", entities.ErrValidation)
	ErrInvalidIssueDate     = fmt.Errorf("issue date is required: %w", entities.ErrValidation)
	ErrInvalidDueDate       = fmt.Errorf("due date is before the issue date: %w", entities.ErrValidation)
	ErrInvalidPaymentAmount = fmt.Errorf("payment amount must be positive: %w", entities.ErrValidation)
	ErrUnknownStatus        = fmt.Errorf("unknown invoice status: %w", entities.ErrValidation)
	ErrEmptyUpdate          = fmt.Errorf("nothing to update: %w", entities.ErrValidation)
	ErrEmptyBatch           = fmt.Errorf("no customers requested: %w", entities.ErrValidation)

	ErrInvoiceNotFound  = fmt.Errorf("invoice %w", entities.ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", entities.ErrNotFound)

	ErrInvoiceNotEditable    = fmt.Errorf("only DRAFT invoices can be edited or deleted: %w", entities.ErrBusinessRuleViolation)
	ErrPaymentNotAccepted    = fmt.Errorf("payments are accepted only for SENT or OVERDUE invoices: %w", entities.ErrBusinessRuleViolation)
	ErrPaymentExceedsBalance = fmt.Errorf("payment exceeds the balance due: %w", entities.ErrBusinessRuleViolation)
	ErrLoadNotInvoiceable    = fmt.Errorf("requested load is not an uninvoiced COMPLETED load of the customer: %w", entities.ErrBusinessRuleViolation)
	ErrInvoiceNumberTaken    = fmt.Errorf("invoice number already exists: %w", entities.ErrBusinessRuleViolation)
	ErrLoadAlreadyInvoiced   = fmt.Errorf("load already belongs to an invoice: %w", entities.ErrConcurrencyContention)
)
