package document_number

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 8

// DocumentNumberFactory issues human readable, practically unique document numbers
// such as STL-20260302-1F3A9C0B. Uniqueness is still enforced by the database.
type DocumentNumberFactory struct {
	settlementPrefix string
	invoicePrefix    string
}

func New(settlementPrefix, invoicePrefix string) *DocumentNumberFactory {
	return &DocumentNumberFactory{
		settlementPrefix: settlementPrefix,
		invoicePrefix:    invoicePrefix,
	}
}

func (f *DocumentNumberFactory) SettlementNumber(at time.Time) string {
	return number(f.settlementPrefix, at)
}

func (f *DocumentNumberFactory) InvoiceNumber(at time.Time) string {
	return number(f.invoicePrefix, at)
}

func number(prefix string, at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:suffixLen]
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), suffix)
}
