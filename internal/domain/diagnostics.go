package domain

// ProbeState is the outcome of a single database probe.
type ProbeState int

const (
	// ProbeUnavailable means no database handle was configured or reachable.
	ProbeUnavailable ProbeState = iota
	// ProbeConnected means the database answered and listed its collections.
	ProbeConnected
	// ProbeConnectedError means the handle exists but the listing failed.
	ProbeConnectedError
)

type ProbeResult struct {
	State       ProbeState
	Collections []string
	Err         string
}

// DiagnosticReport is the body of GET /test. Field names and the
// checkmark/cross wording are part of the external contract.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
