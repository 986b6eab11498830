package n8n

// ResultKind classifies the outcome of one adapter invocation.
type ResultKind int

const (
	// KindSuccess is a 2xx response with a decoded JSON payload.
	KindSuccess ResultKind = iota
	// KindConfigurationError means the adapter is missing required
	// configuration (no API key). Detected before any network attempt.
	KindConfigurationError
	// KindValidationError means the invocation itself was invalid
	// (unknown tool, missing argument, malformed input_data JSON).
	// Detected before any network attempt.
	KindValidationError
	// KindServiceError means n8n answered with a status outside the
	// accepted set for the operation.
	KindServiceError
	// KindTransportError means the request never completed: DNS
	// failure, connection refused, TLS error, timeout, cancellation.
	KindTransportError
)

// String makes ResultKind satisfy the fmt.Stringer interface.
func (k ResultKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindConfigurationError:
		return "configuration_error"
	case KindValidationError:
		return "validation_error"
	case KindServiceError:
		return "service_error"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Result is the normalized outcome of the HTTP-issuing step, consumed
// uniformly by the rendering logic. Exactly one invocation produces
// exactly one Result.
type Result struct {
	Kind ResultKind

	// Payload holds the decoded JSON body. Set only on success.
	Payload any

	// Status holds the HTTP status code. Set only on service errors.
	Status int

	// Detail holds the error description for all error kinds.
	Detail string
}

// Envelope is what the MCP layer sees: one rendered text block plus an
// error flag. Text is never empty by contract.
type Envelope struct {
	Text    string
	IsError bool
}

func errorEnvelope(text string) Envelope {
	return Envelope{Text: text, IsError: true}
}
