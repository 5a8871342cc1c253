package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Reason classifies why a generation call failed. The retry layer keys
// its policy off it.
type Reason int

const (
	// ReasonUnavailable covers transport failures and 5xx answers.
	ReasonUnavailable Reason = iota

	// ReasonRateLimited is a 429. RetryAfter may carry the server's
	// requested pause.
	ReasonRateLimited

	// ReasonBadPayload means the model answered, but the answer is not
	// the JSON the schema asked for.
	ReasonBadPayload

	// ReasonTruncated means the answer hit the MaxTokens cap and the
	// document is incomplete. Retrying the same request cannot help.
	ReasonTruncated
)

func (r Reason) String() string {
	switch r {
	case ReasonRateLimited:
		return "rate limited"
	case ReasonBadPayload:
		return "bad payload"
	case ReasonTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Fault is the error type produced by this package. Body holds the
// offending model output when there is one.
type Fault struct {
	Reason     Reason
	RetryAfter time.Duration
	Body       json.RawMessage
	Err        error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("llm: %s: %v", f.Reason, f.Err)
	}
	return "llm: " + f.Reason.String()
}

func (f *Fault) Unwrap() error { return f.Err }

// ReasonOf extracts the failure reason from an error chain. The second
// return is false when the error did not come from this package.
func ReasonOf(err error) (Reason, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f.Reason, true
	}
	return 0, false
}

// httpFault maps a provider HTTP status to a Fault. All adapters funnel
// their SDK errors through here.
func httpFault(status int, err error) *Fault {
	if status == http.StatusTooManyRequests {
		return &Fault{Reason: ReasonRateLimited, Err: err}
	}
	return &Fault{Reason: ReasonUnavailable, Err: err}
}

func badPayload(body json.RawMessage, err error) *Fault {
	return &Fault{Reason: ReasonBadPayload, Body: body, Err: err}
}
