package mailfleet

// Status tags the result of one send attempt.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Outcome is the permanent per-recipient record of one send attempt.
type Outcome struct {
	Label   string // recipient display name, or address when no name exists
	Address string // recipient email address
	Status  Status
	Detail  string // human-readable cause on failure, confirmation on success
}

// Results is the ordered outcome log of one campaign run: one entry per
// attempted recipient, in input order, no gaps and no duplicates. A run
// that failed to connect holds a single synthetic failed entry.
type Results []Outcome

// Succeeded returns the number of successful sends.
func (r Results) Succeeded() int {
	n := 0
	for _, o := range r {
		if o.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// Failed returns the number of failed sends.
func (r Results) Failed() int {
	return len(r) - r.Succeeded()
}
