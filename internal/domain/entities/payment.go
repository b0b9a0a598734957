package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PaymentStatus values reported by Mercado Pago for a payment.

type PaymentStatus string

const (
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusPending   PaymentStatus = "pending"
)

// PaymentOrder is a transparent-checkout order: one or more tokenized
// sub-payments submitted directly to the provider, correlated by the
// caller-supplied external reference.

type PaymentOrder struct {
	Type              string
	ExternalReference string
	PayerEmail        string
	Payments          []PaymentItem
}

// PaymentItem is one sub-payment of an order. Amount is kept as the decimal
// string received on the wire; it is parsed once, at mapping time.

type PaymentItem struct {
	Amount          string
	PaymentMethodID string
	Token           string
	Installments    int
}

// AmountValue parses the decimal amount string.
func (i PaymentItem) AmountValue() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(i.Amount), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid payment amount %q", i.Amount)
	}
	return v, nil
}

// PaymentRecord is the read model for a provider payment. It is sourced live
// from Mercado Pago on every query; the service keeps no local copy.
//
// Optional provider fields stay as zero values when absent and are omitted
// from responses by the DTO layer.

type PaymentRecord struct {
	ID                string
	Status            PaymentStatus
	StatusDetail      string
	TransactionAmount float64
	PaymentMethodID   string
	PaymentTypeID     string
	DateCreated       time.Time
	DateApproved      time.Time
	ExternalReference string
	Installments      int
	Payer             *PaymentPayer
}

type PaymentPayer struct {
	Email          string
	Identification *PayerIdentification
}

type PayerIdentification struct {
	Type   string
	Number string
}
