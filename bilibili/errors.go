package bilibili

import "errors"

// Kind classifies a pipeline failure.
type Kind int

const (
	// NotFound means the page URL carried no video identifier.
	NotFound Kind = iota + 1
	// Transport covers network failures, timeouts and non-200 statuses.
	Transport
	// Decode means the response body could not be read as an API envelope.
	Decode
	// APIError means the envelope reported a non-zero code.
	APIError
	// MissingData means a successful envelope had no payload.
	MissingData
	// NoStreamFound means the payload listed no usable stream URL.
	NoStreamFound
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Transport:
		return "transport"
	case Decode:
		return "decode"
	case APIError:
		return "api_error"
	case MissingData:
		return "missing_data"
	case NoStreamFound:
		return "no_stream_found"
	default:
		return "unknown"
	}
}

func (k Kind) describe() string {
	switch k {
	case NotFound:
		return "failed to extract identifier from URL"
	case Transport:
		return "request failed"
	case Decode:
		return "malformed response"
	case APIError:
		return "upstream reports"
	case MissingData:
		return "upstream response carried no data"
	case NoStreamFound:
		return "no playable stream found"
	default:
		return "resolution failed"
	}
}

// Error is the typed failure produced by every pipeline stage.
type Error struct {
	Kind Kind
	// Message is the upstream message for APIError, or extra detail otherwise.
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.describe()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind carried by err, or 0 if err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
