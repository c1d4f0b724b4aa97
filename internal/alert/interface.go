package alert

import "context"

// Weather is a current-conditions snapshot for a district. Temperature is
// nil when the provider did not report one.
type Weather struct {
	Condition   string // clear, rainy, stormy, ...
	Temperature *float64
}

// WeatherFetcher supplies current weather for a district. Real deployments
// plug a provider API; tests use a stub.
type WeatherFetcher interface {
	Fetch(ctx context.Context, district, state string) (Weather, error)
}

// SMSSender delivers a short notification to a farmer's mobile. Real
// deployments wire an SMS gateway (MSG91, Twilio, ...).
type SMSSender interface {
	Send(ctx context.Context, mobile, message string) error
}
