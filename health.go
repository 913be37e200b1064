package locator

import (
	"context"
	"sync"
	"time"
)

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "up"
	HealthStatusDown HealthStatus = "down"
)

type HealthReport struct {
	Container string
	Name      string
	Status    HealthStatus
	Error     error
	Latency   time.Duration
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type ReadinessChecker interface {
	ReadinessCheck(ctx context.Context) error
}

// Live fails with the first HealthChecker that reports an error. Only
// values that have already been built are checked.
func (r *Registry) Live(ctx context.Context) error {
	return firstDown(r.Health(ctx))
}

func (r *Registry) Ready(ctx context.Context) error {
	return firstDown(r.check(ctx, func(v any) (func(context.Context) error, bool) {
		rc, ok := v.(ReadinessChecker)
		if !ok {
			return nil, false
		}
		return rc.ReadinessCheck, true
	}))
}

func (r *Registry) Health(ctx context.Context) []HealthReport {
	return r.check(ctx, func(v any) (func(context.Context) error, bool) {
		hc, ok := v.(HealthChecker)
		if !ok {
			return nil, false
		}
		return hc.HealthCheck, true
	})
}

func firstDown(reports []HealthReport) error {
	for _, r := range reports {
		if r.Status == HealthStatusDown {
			return errHealthCheckFailed(r.Name, r.Error).WithContainer(r.Container)
		}
	}
	return nil
}

func (r *Registry) check(
	ctx context.Context,
	pick func(v any) (func(context.Context) error, bool),
) []HealthReport {
	containers := []Container{r}
	for _, s := range r.scopeList() {
		containers = append(containers, s)
	}

	var reports []HealthReport
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, c := range containers {
		for _, built := range c.engine().Constructed() {
			probe, ok := pick(built.Value)
			if !ok {
				continue
			}

			wg.Add(1)
			go func(container, name string, probe func(context.Context) error) {
				defer wg.Done()

				start := time.Now()
				err := probe(ctx)

				report := HealthReport{
					Container: container,
					Name:      name,
					Status:    HealthStatusUp,
					Latency:   time.Since(start),
				}
				if err != nil {
					report.Status = HealthStatusDown
					report.Error = err
				}

				mu.Lock()
				reports = append(reports, report)
				mu.Unlock()
			}(c.Name(), built.Key, probe)
		}
	}

	wg.Wait()
	return reports
}
