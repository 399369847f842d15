package application

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	HealthHealthy   = "healthy"
	HealthDegraded  = "degraded"
	HealthUnhealthy = "unhealthy"
	HealthDisabled  = "disabled"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type BucketProber interface {
	ProbeBucket(ctx context.Context) error
}

type CheckResult struct {
	Status   string `json:"status"`
	Required bool   `json:"required"`
	Error    string `json:"error,omitempty"`
}

type HealthReport struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Ready is false only when a required dependency is down.
func (r HealthReport) Ready() bool {
	return r.Status != HealthUnhealthy
}

// HealthService probes the database and the optional integrations. A nil
// probe target reports "disabled".
type HealthService struct {
	DB         Pinger
	Storage    BucketProber
	SMTPAddr   string
	WebhookURL string
	HTTP       *resty.Client
	Timeout    time.Duration
	Dial       func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewHealthService(db Pinger, storage BucketProber, smtpAddr, webhookURL string) *HealthService {
	d := &net.Dialer{}
	return &HealthService{
		DB:         db,
		Storage:    storage,
		SMTPAddr:   smtpAddr,
		WebhookURL: webhookURL,
		HTTP:       resty.New(),
		Timeout:    3 * time.Second,
		Dial:       d.DialContext,
	}
}

type probe struct {
	name     string
	required bool
	enabled  bool
	check    func(ctx context.Context) error
}

func (s *HealthService) Check(ctx context.Context) HealthReport {
	probes := []probe{
		{"database", true, s.DB != nil, s.checkDB},
		{"storage", true, s.Storage != nil, s.checkStorage},
		{"email", false, s.SMTPAddr != "", s.checkSMTP},
		{"messaging", false, s.WebhookURL != "", s.checkWebhook},
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	var mu sync.Mutex
	var wg sync.WaitGroup
	report := HealthReport{Status: HealthHealthy, Checks: make(map[string]CheckResult, len(probes))}
	for _, p := range probes {
		if !p.enabled {
			report.Checks[p.name] = CheckResult{Status: HealthDisabled, Required: p.required}
			continue
		}
		wg.Add(1)
		go func(p probe) {
			defer wg.Done()
			res := CheckResult{Status: HealthHealthy, Required: p.required}
			if err := p.check(ctx); err != nil {
				res.Status = HealthUnhealthy
				res.Error = err.Error()
			}
			mu.Lock()
			report.Checks[p.name] = res
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	for _, res := range report.Checks {
		if res.Status != HealthUnhealthy {
			continue
		}
		if res.Required {
			report.Status = HealthUnhealthy
			break
		}
		report.Status = HealthDegraded
	}
	return report
}

func (s *HealthService) checkDB(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *HealthService) checkStorage(ctx context.Context) error {
	return s.Storage.ProbeBucket(ctx)
}

func (s *HealthService) checkSMTP(ctx context.Context) error {
	conn, err := s.Dial(ctx, "tcp", s.SMTPAddr)
	if err != nil {
		return err
	}
	return conn.Close()
}

func (s *HealthService) checkWebhook(ctx context.Context) error {
	resp, err := s.HTTP.R().SetContext(ctx).Head(s.WebhookURL)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode())
	}
	return nil
}
