// Package servicetest provides an in-memory store for service scenario tests.
// Each repository view mirrors the SQL repository it stands in for, including
// the not-found sentinels, and TxManager rolls the whole store back on error.
package servicetest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/driver"
	"dispatch/internal/service/invoice"
	"dispatch/internal/service/load"
	"dispatch/internal/service/settlement"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	depth  int

	loads       map[int64]*entities.Load
	drivers     map[int64]*entities.Driver
	deductions  map[int64]*entities.Deduction
	carriers    map[int64]*entities.Carrier
	customers   map[int64]*entities.Customer
	trucks      map[int64]bool
	settlements map[int64]*entities.Settlement
	invoices    map[int64]*entities.Invoice
}

func NewStore() *Store {
	return &Store{
		nextID:      100,
		loads:       map[int64]*entities.Load{},
		drivers:     map[int64]*entities.Driver{},
		deductions:  map[int64]*entities.Deduction{},
		carriers:    map[int64]*entities.Carrier{},
		customers:   map[int64]*entities.Customer{},
		trucks:      map[int64]bool{},
		settlements: map[int64]*entities.Settlement{},
		invoices:    map[int64]*entities.Invoice{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Seeding helpers. They keep ids given by the caller.

func (s *Store) PutLoad(l entities.Load) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cloneLoad(&l)
	for i := range c.Stops {
		c.Stops[i].LoadID = c.ID
	}
	s.loads[l.ID] = c
}

func (s *Store) PutDriver(d entities.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[d.ID] = cloneDriver(&d)
}

func (s *Store) PutDeduction(d entities.Deduction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := d
	s.deductions[d.ID] = &c
}

func (s *Store) PutCarrier(c entities.Carrier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cc := c
	s.carriers[c.ID] = &cc
}

func (s *Store) PutCustomer(c entities.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cc := c
	s.customers[c.ID] = &cc
}

func (s *Store) PutTruck(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trucks[id] = true
}

// Inspection helpers.

func (s *Store) Load(id int64) *entities.Load {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.loads[id]; ok {
		return cloneLoad(l)
	}
	return nil
}

func (s *Store) Driver(id int64) *entities.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drivers[id]; ok {
		return cloneDriver(d)
	}
	return nil
}

func (s *Store) Deduction(id int64) *entities.Deduction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.deductions[id]; ok {
		c := *d
		return &c
	}
	return nil
}

func (s *Store) Settlements() []entities.Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Settlement, 0, len(s.settlements))
	for _, st := range s.settlements {
		out = append(out, *cloneSettlement(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Invoices() []entities.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, *cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TxManager runs fn against the store and restores the pre-call snapshot when
// the outermost call fails. Nested calls join the outer unit of work.
type TxManager struct {
	store *Store
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s := m.store

	s.mu.Lock()
	outer := s.depth == 0
	var snap *Store
	if outer {
		snap = s.snapshot()
	}
	s.depth++
	s.mu.Unlock()

	err := fn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.depth--
	if err != nil && outer {
		s.restore(snap)
	}
	return err
}

func (s *Store) snapshot() *Store {
	snap := NewStore()
	snap.nextID = s.nextID
	for k, v := range s.loads {
		snap.loads[k] = cloneLoad(v)
	}
	for k, v := range s.drivers {
		snap.drivers[k] = cloneDriver(v)
	}
	for k, v := range s.deductions {
		c := *v
		snap.deductions[k] = &c
	}
	for k, v := range s.carriers {
		c := *v
		snap.carriers[k] = &c
	}
	for k, v := range s.customers {
		c := *v
		snap.customers[k] = &c
	}
	for k, v := range s.settlements {
		snap.settlements[k] = cloneSettlement(v)
	}
	for k, v := range s.invoices {
		snap.invoices[k] = cloneInvoice(v)
	}
	return snap
}

func (s *Store) restore(snap *Store) {
	s.loads = snap.loads
	s.drivers = snap.drivers
	s.deductions = snap.deductions
	s.carriers = snap.carriers
	s.customers = snap.customers
	s.settlements = snap.settlements
	s.invoices = snap.invoices
}

// Loads mirrors repository/load.
type Loads struct {
	store *Store
}

func (s *Store) Loads() *Loads {
	return &Loads{store: s}
}

func (r *Loads) Create(_ context.Context, l entities.Load) (*entities.Load, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cloneLoad(&l)
	c.ID = s.id()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	for i := range c.Stops {
		c.Stops[i].ID = s.id()
		c.Stops[i].LoadID = c.ID
		c.Stops[i].Sequence = i + 1
	}
	for i := range c.Accessorials {
		c.Accessorials[i].ID = s.id()
		c.Accessorials[i].LoadID = c.ID
	}
	s.loads[c.ID] = c
	return cloneLoad(c), nil
}

func (r *Loads) Get(_ context.Context, id int64) (*entities.Load, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loads[id]
	if !ok {
		return nil, load.ErrLoadNotFound
	}
	return cloneLoad(l), nil
}

func (r *Loads) GetForUpdate(ctx context.Context, id int64) (*entities.Load, error) {
	return r.Get(ctx, id)
}

func (r *Loads) Update(_ context.Context, m entities.LoadModify) (*entities.Load, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loads[m.ID]
	if !ok {
		return nil, load.ErrLoadNotFound
	}
	m.Apply(l)
	l.UpdatedAt = time.Now().UTC()
	return cloneLoad(l), nil
}

func (r *Loads) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loads[id]; !ok {
		return load.ErrLoadNotFound
	}
	delete(s.loads, id)
	return nil
}

func (r *Loads) AddAccessorial(_ context.Context, a entities.Accessorial) (*entities.Accessorial, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loads[a.LoadID]
	if !ok {
		return nil, load.ErrLoadNotFound
	}
	a.ID = s.id()
	a.CreatedAt = time.Now().UTC()
	l.Accessorials = append(l.Accessorials, a)
	return &a, nil
}

func (r *Loads) ListActiveForDriver(_ context.Context, driverID, excludeLoadID int64) ([]entities.Load, error) {
	return r.filter(func(l *entities.Load) bool {
		return l.ID != excludeLoadID && l.Status.IsActive() && slices.Contains(l.DriverIDs(), driverID)
	}), nil
}

func (r *Loads) ListActiveForTruck(_ context.Context, truckID, excludeLoadID int64) ([]entities.Load, error) {
	return r.filter(func(l *entities.Load) bool {
		return l.ID != excludeLoadID && l.Status.IsActive() && l.TruckID != nil && *l.TruckID == truckID
	}), nil
}

// LockTruck only checks that the truck exists. Scenario tests run sequentially
// against the store, so there is no lock to take.
func (r *Loads) LockTruck(_ context.Context, truckID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.trucks[truckID] {
		return load.ErrTruckNotFound
	}
	return nil
}

func (r *Loads) ListSettleableForUpdate(_ context.Context, driverID int64, from, to time.Time) ([]entities.Load, error) {
	return r.filter(func(l *entities.Load) bool {
		return l.DriverID != nil && *l.DriverID == driverID &&
			slices.Contains(entities.SettleableLoadStatuses, l.Status) &&
			l.SettlementID == nil && !l.ExcludeFromSettlement &&
			l.DeliveredAt != nil && !l.DeliveredAt.Before(from) && l.DeliveredAt.Before(to)
	}), nil
}

func (r *Loads) SetSettlement(_ context.Context, settlementID int64, loadIDs []int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range loadIDs {
		l, ok := s.loads[id]
		if !ok || l.SettlementID != nil {
			return settlement.ErrLoadAlreadySettled
		}
	}
	for _, id := range loadIDs {
		sid := settlementID
		s.loads[id].SettlementID = &sid
	}
	return nil
}

func (r *Loads) ListInvoiceableForUpdate(_ context.Context, customerID int64, loadIDs []int64) ([]entities.Load, error) {
	return r.filter(func(l *entities.Load) bool {
		return l.CustomerID == customerID && l.Status == entities.LoadCompleted && l.InvoiceID == nil &&
			(len(loadIDs) == 0 || slices.Contains(loadIDs, l.ID))
	}), nil
}

func (r *Loads) SetInvoice(_ context.Context, invoiceID int64, loadIDs []int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range loadIDs {
		l, ok := s.loads[id]
		if !ok || l.InvoiceID != nil {
			return invoice.ErrLoadAlreadyInvoiced
		}
	}
	for _, id := range loadIDs {
		iid := invoiceID
		s.loads[id].InvoiceID = &iid
	}
	return nil
}

func (r *Loads) ClearInvoice(_ context.Context, invoiceID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.loads {
		if l.InvoiceID != nil && *l.InvoiceID == invoiceID {
			l.InvoiceID = nil
		}
	}
	return nil
}

func (r *Loads) ListByInvoice(_ context.Context, invoiceID int64) ([]entities.Load, error) {
	return r.filter(func(l *entities.Load) bool {
		return l.InvoiceID != nil && *l.InvoiceID == invoiceID
	}), nil
}

func (r *Loads) filter(keep func(l *entities.Load) bool) []entities.Load {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.Load
	for _, l := range s.loads {
		if keep(l) {
			out = append(out, *cloneLoad(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Drivers mirrors repository/driver.
type Drivers struct {
	store *Store
}

func (s *Store) Drivers() *Drivers {
	return &Drivers{store: s}
}

func (r *Drivers) Get(_ context.Context, id int64) (*entities.Driver, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[id]
	if !ok {
		return nil, driver.ErrDriverNotFound
	}
	return cloneDriver(d), nil
}

func (r *Drivers) GetForUpdate(ctx context.Context, id int64) (*entities.Driver, error) {
	return r.Get(ctx, id)
}

func (r *Drivers) Update(_ context.Context, m entities.DriverModify) (*entities.Driver, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[m.ID]
	if !ok {
		return nil, driver.ErrDriverNotFound
	}
	if m.Status != nil {
		d.Status = *m.Status
	}
	if m.TeamDriverID != nil {
		id := *m.TeamDriverID
		d.TeamDriverID = &id
	}
	if m.ClearTeamDriver {
		d.TeamDriverID = nil
	}
	d.UpdatedAt = time.Now().UTC()
	return cloneDriver(d), nil
}

func (r *Drivers) ListActiveDeductions(_ context.Context, driverID int64) ([]entities.Deduction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.Deduction
	for _, d := range s.deductions {
		if d.DriverID == driverID && d.Active {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Drivers) DeactivateDeductions(_ context.Context, ids []int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if d, ok := s.deductions[id]; ok {
			d.Active = false
		}
	}
	return nil
}

// Carriers mirrors repository/carrier.
type Carriers struct {
	store *Store
}

func (s *Store) Carriers() *Carriers {
	return &Carriers{store: s}
}

func (r *Carriers) Get(_ context.Context, id int64) (*entities.Carrier, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carriers[id]
	if !ok {
		return nil, load.ErrCarrierNotFound
	}
	cc := *c
	return &cc, nil
}

// Customers mirrors repository/customer.
type Customers struct {
	store *Store
}

func (s *Store) Customers() *Customers {
	return &Customers{store: s}
}

func (r *Customers) Get(_ context.Context, id int64) (*entities.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, invoice.ErrCustomerNotFound
	}
	cc := *c
	return &cc, nil
}

// Settlements mirrors repository/settlement.
type Settlements struct {
	store *Store
}

func (s *Store) SettlementRepository() *Settlements {
	return &Settlements{store: s}
}

func (r *Settlements) Create(_ context.Context, st entities.Settlement) (*entities.Settlement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.settlements {
		if existing.Number == st.Number {
			return nil, settlement.ErrSettlementNumberTaken
		}
	}

	c := cloneSettlement(&st)
	c.ID = s.id()
	c.CreatedAt = time.Now().UTC()
	for i := range c.LineItems {
		c.LineItems[i].ID = s.id()
		c.LineItems[i].SettlementID = c.ID
	}
	s.settlements[c.ID] = c
	return cloneSettlement(c), nil
}

func (r *Settlements) Get(_ context.Context, id int64) (*entities.Settlement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settlements[id]
	if !ok {
		return nil, settlement.ErrSettlementNotFound
	}
	return cloneSettlement(st), nil
}

func (r *Settlements) GetForUpdate(ctx context.Context, id int64) (*entities.Settlement, error) {
	return r.Get(ctx, id)
}

func (r *Settlements) Update(_ context.Context, m entities.SettlementModify) (*entities.Settlement, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settlements[m.ID]
	if !ok {
		return nil, settlement.ErrSettlementNotFound
	}
	if m.Status != nil {
		st.Status = *m.Status
	}
	if m.ApprovedAt != nil {
		t := *m.ApprovedAt
		st.ApprovedAt = &t
	}
	if m.PaidAt != nil {
		t := *m.PaidAt
		st.PaidAt = &t
	}
	return cloneSettlement(st), nil
}

// Invoices mirrors repository/invoice.
type Invoices struct {
	store *Store
}

func (s *Store) InvoiceRepository() *Invoices {
	return &Invoices{store: s}
}

func (r *Invoices) Create(_ context.Context, inv entities.Invoice) (*entities.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.invoices {
		if existing.Number == inv.Number {
			return nil, invoice.ErrInvoiceNumberTaken
		}
	}

	c := cloneInvoice(&inv)
	c.ID = s.id()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	for i := range c.LineItems {
		c.LineItems[i].ID = s.id()
		c.LineItems[i].InvoiceID = c.ID
	}
	s.invoices[c.ID] = c
	return cloneInvoice(c), nil
}

func (r *Invoices) Get(_ context.Context, id int64) (*entities.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, invoice.ErrInvoiceNotFound
	}
	return cloneInvoice(inv), nil
}

func (r *Invoices) GetForUpdate(ctx context.Context, id int64) (*entities.Invoice, error) {
	return r.Get(ctx, id)
}

func (r *Invoices) List(_ context.Context, f entities.InvoiceFilter) ([]entities.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entities.Invoice{}
	for _, inv := range s.invoices {
		if f.CustomerID != nil && inv.CustomerID != *f.CustomerID {
			continue
		}
		if f.Status != nil && inv.Status != *f.Status {
			continue
		}
		c := cloneInvoice(inv)
		c.LineItems = nil
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if f.Offset > 0 {
		if f.Offset >= uint64(len(out)) {
			return []entities.Invoice{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < uint64(len(out)) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *Invoices) Update(_ context.Context, m entities.InvoiceModify) (*entities.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[m.ID]
	if !ok {
		return nil, invoice.ErrInvoiceNotFound
	}
	if m.Status != nil {
		inv.Status = *m.Status
	}
	if m.DueDate != nil {
		inv.DueDate = *m.DueDate
	}
	if m.Notes != nil {
		n := *m.Notes
		inv.Notes = &n
	}
	if m.AmountPaid != nil {
		inv.AmountPaid = *m.AmountPaid
	}
	if m.BalanceDue != nil {
		inv.BalanceDue = *m.BalanceDue
	}
	if m.SentAt != nil {
		t := *m.SentAt
		inv.SentAt = &t
	}
	if m.PaidAt != nil {
		t := *m.PaidAt
		inv.PaidAt = &t
	}
	if m.VoidedAt != nil {
		t := *m.VoidedAt
		inv.VoidedAt = &t
	}
	inv.UpdatedAt = time.Now().UTC()
	return cloneInvoice(inv), nil
}

func (r *Invoices) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return invoice.ErrInvoiceNotFound
	}
	delete(s.invoices, id)
	return nil
}

func (r *Invoices) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, inv := range s.invoices {
		if inv.Status == entities.InvoiceSent && inv.DueDate.Before(now) {
			inv.Status = entities.InvoiceOverdue
			n++
		}
	}
	return n, nil
}

// SequentialNumbers is a deterministic document number factory.
type SequentialNumbers struct {
	mu   sync.Mutex
	next int
}

func (n *SequentialNumbers) SettlementNumber(_ time.Time) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	return fmt.Sprintf("STL-%04d", n.next)
}

func (n *SequentialNumbers) InvoiceNumber(_ time.Time) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	return fmt.Sprintf("INV-%04d", n.next)
}

func cloneLoad(l *entities.Load) *entities.Load {
	c := *l
	c.DriverID = clonePtr(l.DriverID)
	c.TeamDriverID = clonePtr(l.TeamDriverID)
	c.TruckID = clonePtr(l.TruckID)
	c.TrailerID = clonePtr(l.TrailerID)
	c.CarrierID = clonePtr(l.CarrierID)
	c.SettlementID = clonePtr(l.SettlementID)
	c.InvoiceID = clonePtr(l.InvoiceID)
	c.ImportConfidence = clonePtr(l.ImportConfidence)
	c.SourceDocumentURL = clonePtr(l.SourceDocumentURL)
	c.AssignedAt = clonePtr(l.AssignedAt)
	c.PickedUpAt = clonePtr(l.PickedUpAt)
	c.DeliveredAt = clonePtr(l.DeliveredAt)
	c.CancellationReason = clonePtr(l.CancellationReason)
	c.Stops = slices.Clone(l.Stops)
	c.Accessorials = slices.Clone(l.Accessorials)
	return &c
}

func cloneDriver(d *entities.Driver) *entities.Driver {
	c := *d
	c.MinPerMile = clonePtr(d.MinPerMile)
	c.TeamDriverID = clonePtr(d.TeamDriverID)
	return &c
}

func cloneSettlement(st *entities.Settlement) *entities.Settlement {
	c := *st
	c.ApprovedAt = clonePtr(st.ApprovedAt)
	c.PaidAt = clonePtr(st.PaidAt)
	c.LineItems = slices.Clone(st.LineItems)
	return &c
}

func cloneInvoice(inv *entities.Invoice) *entities.Invoice {
	c := *inv
	c.Notes = clonePtr(inv.Notes)
	c.SentAt = clonePtr(inv.SentAt)
	c.PaidAt = clonePtr(inv.PaidAt)
	c.VoidedAt = clonePtr(inv.VoidedAt)
	c.LineItems = slices.Clone(inv.LineItems)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
