package diagnostics

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Message  string
	Notes    []Note
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// NewInfo creates a new info diagnostic
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Info,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}
