package billing

import "github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"

// LedgerTxRunner runs a function against the customer, sale, and payment
// collections as one atomic unit. The balance identities span all three, so a
// ledger operation must never be observable half-applied. Implementations
// guarantee fn sees a consistent snapshot and its writes land together.
type LedgerTxRunner interface {
	RunLedger(fn func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
	) error) error
}
