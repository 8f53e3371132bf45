//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_aging_test
package invoice_aging

import (
	"context"
	"time"
)

type Service interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
