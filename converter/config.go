package converter

// Config holds renderer configuration.
type Config struct {
	// Strict makes unknown block types an error instead of an empty render.
	Strict bool
}
