package entities

// PaymentPreference is the input for a Checkout Pro preference: a single line
// item the payer will be redirected to pay for.
//
// All amounts are BRL. Total (Price * Quantity) is capped by the use case.

type PaymentPreference struct {
	Title    string
	Quantity int
	Price    float64
}

func (p PaymentPreference) Total() float64 {
	return p.Price * float64(p.Quantity)
}

// PreferenceSummary is the created-preference read model returned to callers.
//
// AvailableMethods is a static descriptive string derived from the exclusion
// policy, not from the provider response.

type PreferenceSummary struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
	AvailableMethods string
}
