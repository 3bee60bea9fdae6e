// Package types holds the wire shapes shared by every storefront endpoint.
package types

// SuccessEnvelope wraps every 2xx payload under a "data" key so clients can
// unmarshal responses uniformly regardless of the resource returned.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Code is a stable machine-readable
// identifier; Message is safe to surface to end users. Details carries
// field-level context (for example validation failures) and is omitted when
// the error category does not permit it.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under an "error" key, mirroring
// SuccessEnvelope so callers can branch on which key is present.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
