// README: Local user profile (optional, no authentication).
package profile

import "farecast/internal/types"

// User is the single local profile. There is no account system; the profile
// exists purely so the UI can greet the user and prefill report forms.
type User struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
	Language string   `json:"language"`
}
