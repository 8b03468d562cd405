package booking

type PriceCalculator interface {
	CalculatePriceCents(turf TurfSpec, interval Interval, extras []ExtraService) int64
}

// DefaultPriceCalculator charges the turf's hourly rate plus each extra service.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) CalculatePriceCents(turf TurfSpec, interval Interval, extras []ExtraService) int64 {
	total := turf.HourlyRateCents * int64(interval.Hours())
	for _, e := range extras {
		total += e.PriceCents
	}
	return total
}
