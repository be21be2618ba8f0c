package config

// OutputFormat represents the notation used to print moves.
type OutputFormat int

const (
	SAN OutputFormat = iota // Standard Algebraic Notation
	UCI                     // coordinate notation (e2e4)
)

// NotationConfig holds settings for reading and writing moves.
type NotationConfig struct {
	// Format specifies how moves are printed
	Format OutputFormat

	// StrictDisambiguation rejects tokens that match more than one legal
	// move instead of taking the first
	StrictDisambiguation bool
}

// NewNotationConfig creates a NotationConfig with default values.
func NewNotationConfig() *NotationConfig {
	return &NotationConfig{
		Format: SAN,
	}
}
