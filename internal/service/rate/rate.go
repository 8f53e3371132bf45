package rate

import (
	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Calculator holds the money rules for loads and driver pay.
// All results are rounded half away from zero to cents.
type Calculator struct{}

func New() *Calculator {
	return &Calculator{}
}

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// FuelSurcharge returns rate*pct/100, or zero when pct is not positive.
func (c *Calculator) FuelSurcharge(rate, pct decimal.Decimal) decimal.Decimal {
	if !pct.IsPositive() {
		return decimal.Zero
	}
	return Round2(rate.Mul(pct).Div(hundred))
}

func (c *Calculator) LoadTotal(rate, fuelSurcharge, accessorials decimal.Decimal) decimal.Decimal {
	return Round2(rate.Add(fuelSurcharge).Add(accessorials))
}

func (c *Calculator) AccessorialTotal(quantity, unitRate decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitRate))
}

// DriverPay computes what the driver earns for one load.
func (c *Calculator) DriverPay(driver *entities.Driver, load *entities.Load) decimal.Decimal {
	miles := decimal.NewFromInt(load.LoadedMiles)

	var pay decimal.Decimal
	switch driver.PayModel {
	case entities.PayCPM:
		pay = miles.Mul(driver.PayRate)
	case entities.PayPercentage:
		base := load.TotalAmount
		if !base.IsPositive() {
			base = load.RateAmount
		}
		pay = base.Mul(driver.PayRate).Div(hundred)
	case entities.PayFlat:
		pay = driver.PayRate
	default:
		pay = decimal.Zero
	}
	pay = Round2(pay)

	if load.LoadedMiles > 0 && driver.MinPerMile != nil && driver.MinPerMile.IsPositive() {
		floor := Round2(miles.Mul(*driver.MinPerMile))
		if floor.GreaterThan(pay) {
			pay = floor
		}
	}

	return pay
}
