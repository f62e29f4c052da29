package autotool

// ConfigurationError reports that a wrapper could not be constructed from its
// inputs: a nil client, or a client with no enumerable callable members.
// Construction is all-or-nothing; no partial operation set is produced.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "autotool configuration: " + e.Reason
}
