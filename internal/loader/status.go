// Package loader fetches the static JSON documents behind each view and
// publishes them as immutable snapshots.
package loader

// Status is the lifecycle of a load.
type Status int32

const (
	// Pending means the load has not finished yet.
	Pending Status = iota
	// Loaded means the records are published and features may be enabled.
	Loaded
	// Failed means the load ended in an error; features stay disabled.
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
