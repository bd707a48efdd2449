package types

import "github.com/zeebo/xxh3"

// QueryResult contains the compiled SQL and required parameters.
// RequiredParams lists parameter names in placeholder order; compilation is
// deterministic, so the same AST always produces the same SQL text and the
// same parameter order.
type QueryResult struct {
	SQL            string
	RequiredParams []string
}

// Fingerprint returns a stable 64-bit hash of the compiled SQL and its
// parameter order, suitable as a key for statement caches.
func (r *QueryResult) Fingerprint() uint64 {
	h := xxh3.New()
	_, _ = h.WriteString(r.SQL)
	for _, p := range r.RequiredParams {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(p)
	}
	return h.Sum64()
}
