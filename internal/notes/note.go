package notes

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Categories a note can be filed under. The first entry is the default for
// new notes.
var Categories = []string{"Goal Evidence", "Support Coordination", "Active Duty"}

// DefaultCategory returns the category pre-selected for new notes.
func DefaultCategory() string {
	return Categories[0]
}

// Note is one client interaction entry. ID is assigned at creation and
// never changes; the other fields are user-editable.
type Note struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId" validate:"required"`
	Category string `json:"category"`
	Text     string `json:"text" validate:"required"`
}

// ValidationError is a user-input contract violation. It is always
// recoverable: the caller shows the message and performs no mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = validator.New()

// Validate checks the user-editable contract: a client must be selected,
// the text must be non-empty after trimming, and the category must be one
// of the fixed set. Checks run in that order and the first violation wins.
func (n Note) Validate() error {
	n.Text = strings.TrimSpace(n.Text)

	if err := validate.Struct(n); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "ClientID":
				return &ValidationError{Field: "clientId", Message: "Please select a client."}
			case "Text":
				return &ValidationError{Field: "text", Message: "Please enter some note text."}
			}
		}
		return err
	}

	if !validCategory(n.Category) {
		return &ValidationError{Field: "category", Message: "Please choose a valid category."}
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
