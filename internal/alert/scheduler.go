package alert

import (
	"context"
	"time"

	"krishisaathi/internal/farmer"
	"krishisaathi/internal/model"
	"krishisaathi/pkg/log"
)

// Severe-weather thresholds. Kept strict to avoid alert fatigue.
const (
	heatThreshold = 43.0
	coldThreshold = 1.0
)

// DefaultInterval is how often the scheduler sweeps all farmers.
const DefaultInterval = 6 * time.Hour

// Scheduler periodically checks weather per farmer district and sends an
// SMS when conditions cross a severe threshold.
type Scheduler struct {
	l        log.Logger
	farmers  farmer.Repository
	weather  WeatherFetcher
	sms      SMSSender
	interval time.Duration
}

// New creates a weather alert scheduler. A zero interval means
// DefaultInterval.
func New(l log.Logger, farmers farmer.Repository, weather WeatherFetcher, sms SMSSender, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		l:        l,
		farmers:  farmers,
		weather:  weather,
		sms:      sms,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, sweeping every interval. The first
// sweep happens after one full interval, not at startup.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.Infof(ctx, "weather alert scheduler started interval=%s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "weather alert scheduler stopped")
			return
		case <-ticker.C:
			s.CheckOnce(ctx)
		}
	}
}

// CheckOnce runs a single sweep over all farmers. Exported so operators can
// trigger an out-of-band check.
func (s *Scheduler) CheckOnce(ctx context.Context) {
	farmers, err := s.farmers.List(ctx)
	if err != nil {
		s.l.Errorf(ctx, "alert: list farmers: %v", err)
		return
	}

	sent := 0
	for _, f := range farmers {
		if !alertable(f) {
			continue
		}

		w, err := s.weather.Fetch(ctx, f.District, f.State)
		if err != nil {
			s.l.Warnf(ctx, "alert: weather fetch failed farmer=%s district=%s: %v", f.ID, f.District, err)
			continue
		}

		msg := severeMessage(w)
		if msg == "" {
			continue
		}

		if err := s.sms.Send(ctx, f.Mobile, msg); err != nil {
			s.l.Warnf(ctx, "alert: sms send failed farmer=%s: %v", f.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.l.Infof(ctx, "alert sweep done farmers=%d alerts_sent=%d", len(farmers), sent)
	}
}

// alertable requires a deliverable mobile number and a district to resolve
// weather for.
func alertable(f model.Farmer) bool {
	return len(f.Mobile) >= 10 && f.District != ""
}

// severeMessage maps weather onto an alert text, or empty when conditions
// are not severe. Condition checks take precedence over temperature.
func severeMessage(w Weather) string {
	switch w.Condition {
	case "stormy":
		return "KRISHISAATHI: Storm likely. Keep crops and yourself safe."
	case "rainy":
		return "KRISHISAATHI: Rain expected. Reduce irrigation, check drainage."
	}
	if w.Temperature != nil {
		if *w.Temperature >= heatThreshold {
			return "KRISHISAATHI: Extreme heat. Ensure water and shade for crops."
		}
		if *w.Temperature <= coldThreshold {
			return "KRISHISAATHI: Cold conditions. Protect sensitive crops."
		}
	}
	return ""
}
