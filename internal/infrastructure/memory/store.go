// Package memory implements the repository ports as mutex-protected in-memory
// collections. Nothing survives a restart: persistence is explicitly out of
// scope for this application.
package memory

import (
	"fmt"
	"sync"

	"github.com/Iamyashjain/handy-sales-manager/internal/domain/entity"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain/repository"
)

// Entity ID prefixes.
const (
	PrefixCustomer  = "CUST"
	PrefixProduct   = "PROD"
	PrefixSale      = "INV"
	PrefixPayment   = "PAY"
	PrefixPurchase  = "PUR"
	PrefixInventory = "ITM"
)

// Store owns every collection behind one lock. Records are cloned on both read
// and write so callers can never alias stored state. Insertion order is kept
// newest-first, matching how the transaction lists are displayed.
type Store struct {
	mu sync.RWMutex

	customers     map[string]*entity.Customer
	customerOrder []string

	products     map[string]*entity.Product
	productOrder []string

	sales     map[string]*entity.Sale
	saleOrder []string

	payments     map[string]*entity.Payment
	paymentOrder []string

	purchases     map[string]*entity.Purchase
	purchaseOrder []string

	inventory      map[string]*entity.InventoryItem
	inventoryOrder []string

	counters map[string]int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]*entity.Customer),
		products:  make(map[string]*entity.Product),
		sales:     make(map[string]*entity.Sale),
		payments:  make(map[string]*entity.Payment),
		purchases: make(map[string]*entity.Purchase),
		inventory: make(map[string]*entity.InventoryItem),
		counters:  make(map[string]int64),
	}
}

// Next issues the next ID for the prefix: a monotonic per-prefix counter,
// zero-padded to 3 digits. Counters never go backwards, so deleting an entity
// can never cause its ID to be reissued.
func (s *Store) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked(prefix)
}

func (s *Store) nextLocked(prefix string) string {
	s.counters[prefix]++
	return fmt.Sprintf("%s-%03d", prefix, s.counters[prefix])
}

var _ repository.IDSequence = (*Store)(nil)

// RunLedger runs fn while holding the store's write lock, handing it repository
// views that share that lock. Ledger operations span multiple collections
// (customer + sale + payment), and the balance identities must never be
// observable half-applied. Callers validate and compute before writing, so an
// error from fn means nothing was written.
func (s *Store) RunLedger(fn func(
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(
		&CustomerRepository{store: s, inTx: true},
		&SaleRepository{store: s, inTx: true},
		&PaymentRepository{store: s, inTx: true},
	)
}

// Customers returns the customer repository view.
func (s *Store) Customers() repository.CustomerRepository { return &CustomerRepository{store: s} }

// Products returns the product repository view.
func (s *Store) Products() repository.ProductRepository { return &ProductRepository{store: s} }

// Sales returns the sale repository view.
func (s *Store) Sales() repository.SaleRepository { return &SaleRepository{store: s} }

// Payments returns the payment repository view.
func (s *Store) Payments() repository.PaymentRepository { return &PaymentRepository{store: s} }

// Purchases returns the purchase repository view.
func (s *Store) Purchases() repository.PurchaseRepository { return &PurchaseRepository{store: s} }

// Inventory returns the inventory repository view.
func (s *Store) Inventory() repository.InventoryRepository { return &InventoryRepository{store: s} }

// removeFromOrder drops id from an order slice, preserving the remaining order.
func removeFromOrder(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
