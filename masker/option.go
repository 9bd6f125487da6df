package masker

// Option customizes a Masker.
type Option func(*Masker)

// WithUnused enables the catch-all bucket: identifier-shaped tokens that no
// classification rule binds are still assigned a deterministic mx alias.
func WithUnused() Option {
	return func(m *Masker) {
		m.includeUnused = true
	}
}

// WithoutFingerprint skips recording the source fingerprint in the table.
func WithoutFingerprint() Option {
	return func(m *Masker) {
		m.fingerprint = false
	}
}
