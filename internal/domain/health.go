package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string       `json:"name" yaml:"name"`
	Status  HealthStatus `json:"status" yaml:"status"`
	Details string       `json:"details" yaml:"details"`
}

// HealthReport aggregates checks.
type HealthReport struct {
	Version string        `json:"version" yaml:"version"`
	Checks  []HealthCheck `json:"checks" yaml:"checks"`
}

// HasErrors reports whether any check failed.
func (r HealthReport) HasErrors() bool {
	for _, check := range r.Checks {
		if check.Status == HealthError {
			return true
		}
	}
	return false
}
