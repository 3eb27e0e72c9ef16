// Package messages renders the human-readable text attached to domain errors.
// Templates live in a golang.org/x/text catalog keyed by Key.
package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Key string

const (
	CustomerNotFound        Key = "customer.not_found"
	CustomerAlreadyExists   Key = "customer.already_exists"
	PaymentNotFound         Key = "payment.not_found"
	PaymentProcessingError  Key = "payment.processing_error"
	ReversalProcessingError Key = "payment.reversal_processing_error"
	DefaultError            Key = "error.default"
	ServiceError            Key = "service.error"
	ValidationError         Key = "validation.error"
)

// Keys lists every recognized message key.
func Keys() []Key {
	return []Key{
		CustomerNotFound,
		CustomerAlreadyExists,
		PaymentNotFound,
		PaymentProcessingError,
		ReversalProcessingError,
		DefaultError,
		ServiceError,
		ValidationError,
	}
}

// Formatter interpolates the template registered for key with args.
type Formatter interface {
	Format(key Key, args ...any) string
}

var templates = map[language.Tag]map[Key]string{
	language.English: {
		CustomerNotFound:        "Customer with ID %s not found",
		CustomerAlreadyExists:   "Customer with email %s already exists",
		PaymentNotFound:         "Payment with ID %s not found",
		PaymentProcessingError:  "Error processing payment for reference %s: %s",
		ReversalProcessingError: "Error processing payment reversal for reference %s: %s",
		DefaultError:            "Unexpected response from payment processor",
		ServiceError:            "Service error: %s",
		ValidationError:         "Validation failed: %s",
	},
	language.Spanish: {
		CustomerNotFound:        "No se encontró el cliente con ID %s",
		CustomerAlreadyExists:   "Ya existe un cliente con el email %s",
		PaymentNotFound:         "No se encontró el pago con ID %s",
		PaymentProcessingError:  "Error procesando el pago con referencia %s: %s",
		ReversalProcessingError: "Error procesando la reversión del pago con referencia %s: %s",
		DefaultError:            "Respuesta inesperada del procesador de pagos",
		ServiceError:            "Error del servicio: %s",
		ValidationError:         "Validación fallida: %s",
	},
}

var supported = []language.Tag{language.English, language.Spanish}

// Catalog is the Formatter backed by the built-in templates.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog builds a formatter for locale. Unknown or unsupported locales
// resolve to English.
func NewCatalog(locale string) (*Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range templates {
		for key, tmpl := range msgs {
			if err := builder.SetString(tag, string(key), tmpl); err != nil {
				return nil, err
			}
		}
	}

	tag := match(locale)
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Format renders the template for key in the catalog's language. Keys
// without a template are returned as is.
func (c *Catalog) Format(key Key, args ...any) string {
	return c.printer.Sprintf(string(key), args...)
}

// Language is the tag the catalog resolved to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

func match(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supported[idx]
}
