package problemgen

// MaxAttempts is the default number of draws before the generator gives up
// on finding an unseen problem.
const MaxAttempts = 1000

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttempts bounds the de-duplication loop. Zero means MaxAttempts.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard attempt bound.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: MaxAttempts,
	}
}
