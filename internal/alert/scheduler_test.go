package alert

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"krishisaathi/internal/farmer/memory"
	"krishisaathi/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type stubWeather struct {
	byDistrict map[string]Weather
	err        error
}

func (s stubWeather) Fetch(ctx context.Context, district, state string) (Weather, error) {
	if s.err != nil {
		return Weather{}, s.err
	}
	return s.byDistrict[district], nil
}

type smsRecord struct {
	Mobile  string
	Message string
}

type stubSMS struct {
	mu   sync.Mutex
	sent []smsRecord
	err  error
}

func (s *stubSMS) Send(ctx context.Context, mobile, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, smsRecord{Mobile: mobile, Message: message})
	return nil
}

func temp(v float64) *float64 { return &v }

func TestSevereMessage(t *testing.T) {
	tests := []struct {
		name    string
		weather Weather
		want    string
	}{
		{"stormy", Weather{Condition: "stormy"}, "KRISHISAATHI: Storm likely. Keep crops and yourself safe."},
		{"rainy", Weather{Condition: "rainy"}, "KRISHISAATHI: Rain expected. Reduce irrigation, check drainage."},
		{"extreme heat", Weather{Condition: "clear", Temperature: temp(45)}, "KRISHISAATHI: Extreme heat. Ensure water and shade for crops."},
		{"heat at threshold", Weather{Condition: "clear", Temperature: temp(43)}, "KRISHISAATHI: Extreme heat. Ensure water and shade for crops."},
		{"cold", Weather{Condition: "clear", Temperature: temp(0)}, "KRISHISAATHI: Cold conditions. Protect sensitive crops."},
		{"mild", Weather{Condition: "clear", Temperature: temp(28)}, ""},
		{"no temperature reported", Weather{Condition: "clear"}, ""},
		{"stormy outranks temperature", Weather{Condition: "stormy", Temperature: temp(28)}, "KRISHISAATHI: Storm likely. Keep crops and yourself safe."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := severeMessage(tt.weather); got != tt.want {
				t.Errorf("severeMessage(%+v) = %q, want %q", tt.weather, got, tt.want)
			}
		})
	}
}

func TestCheckOnceSendsOnlyToAlertableFarmers(t *testing.T) {
	// f2 has no mobile, f3 has no district, f4's mobile is too short.
	farmers := memory.NewWith(
		model.Farmer{ID: "f1", Mobile: "9876543210", District: "Nagpur"},
		model.Farmer{ID: "f2", Mobile: "", District: "Nagpur"},
		model.Farmer{ID: "f3", Mobile: "9876543211", District: ""},
		model.Farmer{ID: "f4", Mobile: "12345", District: "Nagpur"},
		model.Farmer{ID: "f5", Mobile: "9876543212", District: "Pune"},
	)
	weather := stubWeather{byDistrict: map[string]Weather{
		"Nagpur": {Condition: "stormy"},
		"Pune":   {Condition: "clear", Temperature: temp(30)},
	}}
	sms := &stubSMS{}

	s := New(nopLogger{}, farmers, weather, sms, 0)
	s.CheckOnce(context.Background())

	if len(sms.sent) != 1 {
		t.Fatalf("sent = %d messages, want 1: %+v", len(sms.sent), sms.sent)
	}
	if sms.sent[0].Mobile != "9876543210" {
		t.Errorf("sent to %q, want f1's mobile", sms.sent[0].Mobile)
	}
}

func TestCheckOnceSurvivesFetchErrors(t *testing.T) {
	farmers := memory.NewWith(
		model.Farmer{ID: "f1", Mobile: "9876543210", District: "Nagpur"},
	)
	sms := &stubSMS{}

	s := New(nopLogger{}, farmers, stubWeather{err: errors.New("provider down")}, sms, 0)
	s.CheckOnce(context.Background())

	if len(sms.sent) != 0 {
		t.Fatalf("sent = %d messages, want 0", len(sms.sent))
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	farmers := memory.New()
	s := New(nopLogger{}, farmers, stubWeather{}, &stubSMS{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(nopLogger{}, memory.New(), stubWeather{}, &stubSMS{}, 0)
	if s.interval != DefaultInterval {
		t.Errorf("interval = %s, want %s", s.interval, DefaultInterval)
	}
}
