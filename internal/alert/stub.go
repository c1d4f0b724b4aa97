package alert

import (
	"context"

	"krishisaathi/pkg/log"
)

// logSender is a log-only SMSSender for development. Production wires a real
// gateway behind the same interface.
type logSender struct {
	l log.Logger
}

// NewLogSender returns an SMSSender that logs instead of sending.
func NewLogSender(l log.Logger) SMSSender {
	return logSender{l: l}
}

func (s logSender) Send(ctx context.Context, mobile, message string) error {
	tail := mobile
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	s.l.Infof(ctx, "sms stub to=%s msg=%q", tail, message)
	return nil
}

// staticFetcher returns a fixed weather snapshot for every district. Used in
// development when no weather provider is configured.
type staticFetcher struct {
	weather Weather
}

// NewStaticFetcher returns a WeatherFetcher that always reports w.
func NewStaticFetcher(w Weather) WeatherFetcher {
	return staticFetcher{weather: w}
}

func (f staticFetcher) Fetch(ctx context.Context, district, state string) (Weather, error) {
	return f.weather, nil
}
