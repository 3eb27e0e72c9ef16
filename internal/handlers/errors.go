package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/apperrors"
	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/sirupsen/logrus"
)

// Problem is an RFC 7807 problem detail body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

type problemClass struct {
	status int
	title  string
}

var problemClasses = map[apperrors.Kind]problemClass{
	apperrors.KindCustomerNotFound:      {http.StatusNotFound, "Customer Not Found"},
	apperrors.KindPaymentNotFound:       {http.StatusNotFound, "Payment Not Found"},
	apperrors.KindCustomerAlreadyExists: {http.StatusConflict, "Customer Conflict"},
	apperrors.KindValidation:            {http.StatusBadRequest, "Validation Error"},
	apperrors.KindPaymentProcessing:     {http.StatusInternalServerError, "Payment Processing Error"},
	apperrors.KindReversalProcessing:    {http.StatusInternalServerError, "Reversal Processing Error"},
	apperrors.KindService:               {http.StatusInternalServerError, "Service Error"},
}

var generalProblem = problemClass{http.StatusInternalServerError, "General Error"}

// writeError renders err as a problem detail and aborts the request.
func writeError(c *gin.Context, err error) {
	class := generalProblem
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if known, ok := problemClasses[appErr.Kind]; ok {
			class = known
		}
	}

	if class.status >= http.StatusInternalServerError {
		logrus.WithField("path", c.Request.URL.Path).Errorf("request failed: %s", err.Error())
	}

	c.AbortWithStatusJSON(class.status, Problem{
		Type:     "about:blank",
		Title:    class.title,
		Status:   class.status,
		Detail:   err.Error(),
		Instance: c.Request.URL.Path,
	})
}

// validationError wraps a binding or DTO validation failure.
func validationError(f messages.Formatter, err error) error {
	return apperrors.Wrap(apperrors.KindValidation, f.Format(messages.ValidationError, err.Error()), err)
}
