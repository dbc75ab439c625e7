package dto

// SubscribeRequest payload for signups. The public form posts either
// urlencoded fields or JSON.
type SubscribeRequest struct {
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Consent    string `json:"consent" form:"consent"`
	SourcePage string `json:"source_page" form:"source_page"`
}

// SubscribeResponse standard response for the signup endpoint.
type SubscribeResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
