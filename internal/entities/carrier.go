package entities

type CarrierStatus string

const (
	CarrierActive    CarrierStatus = "ACTIVE"
	CarrierInactive  CarrierStatus = "INACTIVE"
	CarrierSuspended CarrierStatus = "SUSPENDED"
)

type Carrier struct {
	ID       int64
	Name     string
	MCNumber string
	Status   CarrierStatus
}

func (c *Carrier) CanBroker() bool {
	return c.Status != CarrierInactive && c.Status != CarrierSuspended
}

type Customer struct {
	ID               int64
	Name             string
	BillingEmail     string
	PaymentTermsDays int
}
