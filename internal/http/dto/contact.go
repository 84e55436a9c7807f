package dto

// ContactRequest mirrors the site's contact form. Honeypot is the hidden
// field only bots fill in.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
	Honeypot string `json:"_hp,omitempty"`
}
