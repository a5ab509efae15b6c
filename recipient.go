package mailfleet

// Recipient is one row of the campaign roster. Constructed once at
// ingestion and immutable for the duration of the run. The address is
// expected to be validated by the loader; the dispatcher does not
// re-validate it.
type Recipient struct {
	DisplayName string // optional company/entity name, "" when absent
	Address     string // required, syntactically valid email address
}

// Label returns the display name when present, otherwise the address.
// Used to identify the recipient in outcome records and progress output.
func (r Recipient) Label() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.Address
}
