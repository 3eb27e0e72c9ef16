package processor_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(t *testing.T) messages.Formatter {
	t.Helper()
	c, err := messages.NewCatalog("en")
	require.NoError(t, err)
	return c
}

func TestClassify_CreatedIsAccepted(t *testing.T) {
	err := processor.Classify(processor.OperationPayment, "ref-1", &processor.Response{StatusCode: http.StatusCreated}, nil, newFormatter(t))

	assert.NoError(t, err)
}

func TestClassify_Failures(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		op       processor.Operation
		res      *processor.Response
		callErr  error
		wantKind error
		wantMsg  string
	}{
		{
			name:     "payment rejected with body",
			op:       processor.OperationPayment,
			res:      &processor.Response{StatusCode: http.StatusPaymentRequired, Error: &processor.ErrorBody{Message: "insufficient funds"}},
			wantKind: apperrors.ErrPaymentProcessing,
			wantMsg:  "Error processing payment for reference ref-1: insufficient funds",
		},
		{
			name:     "generic OK is a failure",
			op:       processor.OperationPayment,
			res:      &processor.Response{StatusCode: http.StatusOK},
			wantKind: apperrors.ErrPaymentProcessing,
			wantMsg:  "Error processing payment for reference ref-1: Unexpected response from payment processor",
		},
		{
			name:     "empty message uses default",
			op:       processor.OperationPayment,
			res:      &processor.Response{StatusCode: http.StatusInternalServerError, Error: &processor.ErrorBody{}},
			wantKind: apperrors.ErrPaymentProcessing,
			wantMsg:  "Error processing payment for reference ref-1: Unexpected response from payment processor",
		},
		{
			name:     "transport failure uses default",
			op:       processor.OperationPayment,
			callErr:  transportErr,
			wantKind: apperrors.ErrPaymentProcessing,
			wantMsg:  "Error processing payment for reference ref-1: Unexpected response from payment processor",
		},
		{
			name:     "reversal rejected",
			op:       processor.OperationReversal,
			res:      &processor.Response{StatusCode: http.StatusConflict, Error: &processor.ErrorBody{Message: "already reversed"}},
			wantKind: apperrors.ErrReversalProcessing,
			wantMsg:  "Error processing payment reversal for reference ref-1: already reversed",
		},
		{
			name:     "reversal transport failure",
			op:       processor.OperationReversal,
			callErr:  transportErr,
			wantKind: apperrors.ErrReversalProcessing,
			wantMsg:  "Error processing payment reversal for reference ref-1: Unexpected response from payment processor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := processor.Classify(tt.op, "ref-1", tt.res, tt.callErr, newFormatter(t))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.EqualError(t, err, tt.wantMsg)
			if tt.callErr != nil {
				assert.ErrorIs(t, err, tt.callErr)
			}
		})
	}
}

func TestClassify_UnknownOperation(t *testing.T) {
	err := processor.Classify(processor.Operation("refund"), "ref-1", &processor.Response{StatusCode: http.StatusBadRequest}, nil, newFormatter(t))

	assert.ErrorIs(t, err, apperrors.ErrService)
}
