package releasemanager

// Status is the outcome of an update check
type Status int

const (
	// StatusNotFound means no release newer than the current one is published
	StatusNotFound Status = iota
	// StatusFound means a newer release is published
	StatusFound
	// StatusUnavailable means the releases could not be loaded: nothing is known about updates
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "not found"
	}
}

// CheckResult is the result of an update check.
// Release is only set with StatusFound, and Err only with StatusUnavailable.
type CheckResult struct {
	Status  Status
	Release *Release
	Err     error
}

// Found returns true when a newer release was found
func (r CheckResult) Found() bool {
	return r.Status == StatusFound && r.Release != nil
}
