package messages_test

import (
	"testing"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalog_English(t *testing.T) {
	c, err := messages.NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "Customer with ID 42 not found", c.Format(messages.CustomerNotFound, "42"))
	assert.Equal(t, "Customer with email john@x.com already exists", c.Format(messages.CustomerAlreadyExists, "john@x.com"))
	assert.Equal(t,
		"Error processing payment for reference ref-1: insufficient funds",
		c.Format(messages.PaymentProcessingError, "ref-1", "insufficient funds"),
	)
	assert.Equal(t,
		"Error processing payment reversal for reference ref-1: not allowed",
		c.Format(messages.ReversalProcessingError, "ref-1", "not allowed"),
	)
}

func TestCatalog_Spanish(t *testing.T) {
	c, err := messages.NewCatalog("es-MX")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, c.Language())
	assert.Equal(t, "No se encontró el pago con ID p-1", c.Format(messages.PaymentNotFound, "p-1"))
}

func TestCatalog_UnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"ja", "not a locale", ""} {
		c, err := messages.NewCatalog(locale)
		require.NoError(t, err)
		assert.Equal(t, language.English, c.Language(), locale)
	}
}

func TestCatalog_EveryKeyHasTemplate(t *testing.T) {
	c, err := messages.NewCatalog("en")
	require.NoError(t, err)

	for _, key := range messages.Keys() {
		assert.NotEqual(t, string(key), c.Format(key, "a", "b"), "missing template for %s", key)
	}
}
