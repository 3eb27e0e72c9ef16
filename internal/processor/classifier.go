package processor

import (
	"net/http"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
)

type failure struct {
	kind apperrors.Kind
	key  messages.Key
}

var failures = map[Operation]failure{
	OperationPayment:  {kind: apperrors.KindPaymentProcessing, key: messages.PaymentProcessingError},
	OperationReversal: {kind: apperrors.KindReversalProcessing, key: messages.ReversalProcessingError},
}

// Classify returns nil only when the processor answered 201 Created. Any
// other status, or a call that never completed (callErr != nil), becomes the
// operation's processing error carrying the reference and the upstream
// message, or the default message when there is none.
func Classify(op Operation, reference string, res *Response, callErr error, f messages.Formatter) error {
	if callErr == nil && res != nil && res.StatusCode == http.StatusCreated {
		return nil
	}

	detail := f.Format(messages.DefaultError)
	if callErr == nil && res != nil && res.Error != nil && res.Error.Message != "" {
		detail = res.Error.Message
	}

	fl, ok := failures[op]
	if !ok {
		return apperrors.Wrap(apperrors.KindService, f.Format(messages.ServiceError, detail), callErr)
	}
	return apperrors.Wrap(fl.kind, f.Format(fl.key, reference, detail), callErr)
}
