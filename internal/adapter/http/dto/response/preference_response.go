package response

import "checkout_xpto/internal/domain/entities"

type PreferenceCreateResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	AvailableMethods string `json:"available_methods"`
}

func FromPreferenceSummary(s entities.PreferenceSummary) PreferenceCreateResponse {
	return PreferenceCreateResponse{
		ID:               s.ID,
		InitPoint:        s.InitPoint,
		SandboxInitPoint: s.SandboxInitPoint,
		AvailableMethods: s.AvailableMethods,
	}
}
