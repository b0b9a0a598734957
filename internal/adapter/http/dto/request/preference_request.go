package request

import (
	"strings"

	"checkout_xpto/internal/domain/entities"
)

// PreferenceCreateRequest is the payload for the preference-creation route.
//
// Quantity defaults to 1 when omitted.

type PreferenceCreateRequest struct {
	Title     string  `json:"title" binding:"required,min=3,max=100"`
	Quantity  int     `json:"quantity" binding:"omitempty,gte=1,lte=999"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0,lte=999999.99"`
}

func (r PreferenceCreateRequest) ToEntity() entities.PaymentPreference {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return entities.PaymentPreference{
		Title:    strings.TrimSpace(r.Title),
		Quantity: quantity,
		Price:    r.UnitPrice,
	}
}
