package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/getidex/idex/internal"
)

var log = internal.GetLogger()

const MaxProviderAPIRequestAttempts = 3

// ProviderError wraps a failure returned by an upstream AI provider.
type ProviderError struct {
	message       string
	originalError error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %s (original error: %v)", e.message, e.originalError)
}

func NewProviderError(message string, originalError error) *ProviderError {
	return &ProviderError{message: message, originalError: originalError}
}

// newRetryPolicy builds the retry policy applied to provider calls.
// Context cancellation aborts the retry loop rather than burning the
// remaining attempts.
func newRetryPolicy() retrypolicy.RetryPolicy[any] {
	return retrypolicy.Builder[any]().
		AbortOnErrors(context.Canceled, context.DeadlineExceeded).
		WithBackoff(200*time.Millisecond, 10*time.Second).
		WithMaxRetries(MaxProviderAPIRequestAttempts).
		Build()
}
