package contact

// ContactRequest represents a contact form submission. Binding only guards
// against oversized payloads; field rules are enforced by the contact
// workflow so the JSON API and the HTML form report the same hints.
type ContactRequest struct {
	Name           string `json:"name" binding:"max=200"`
	Email          string `json:"email" binding:"max=320"`
	Message        string `json:"message" binding:"max=5000"`
	RecaptchaToken string `json:"recaptcha_token" binding:"max=4096"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// FieldHintResponse is the inline hint for a single field
type FieldHintResponse struct {
	Field string `json:"field"`
	Hint  string `json:"hint"`
	Valid bool   `json:"valid"`
}
