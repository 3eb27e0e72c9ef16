package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Amounts travel as JSON numbers, both in API responses and to the processor.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Payment is immutable once stored. CustomerID is required and Customer is
// preloaded on reads.
type Payment struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Method      string          `gorm:"not null" json:"method"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"amount"`
	CustomerID  string          `gorm:"index;not null" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Reference   string          `gorm:"uniqueIndex;not null" json:"reference"`
	PaymentDate time.Time       `gorm:"autoCreateTime" json:"payment_date"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}
