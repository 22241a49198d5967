package model

// Adapter defines the common interface for log format implementations.
// Each format provides its own adapter that conforms to this interface and
// is selected through the registry at registration time.
type Adapter interface {
	// Type returns the format name this adapter is registered under.
	Type() string

	// Parse converts a raw line into a Line. It returns nil for input the
	// format does not match or cannot validate; malformed data is never a
	// reason to panic. Panics are reserved for adapter programming errors.
	Parse(raw string) *Line

	// DefaultExpansion renders the description of a line this adapter
	// produced. Typically delegates to line.DefaultExpansion.
	DefaultExpansion(line *Line) Expansion

	// HandleQuery resolves input against a line this adapter produced.
	// Typically delegates to line.HandleQuery.
	HandleQuery(line *Line, input string) QueryResult

	// Commands returns the template command table for documentation and
	// autocomplete. The template is built without a parsed context and
	// must not be used for execution.
	Commands() []Command
}
