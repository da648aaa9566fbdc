package conversation

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Identity is the pair of inputs a conversation screen is built from.
// It is owned by the caller and never mutated by the screen.
type Identity struct {
	Name        string `validate:"required" mapstructure:"name"`
	LastMessage string `validate:"required" mapstructure:"last_message"`
}

// NewIdentity creates and validates an identity
func NewIdentity(name, lastMessage string) (Identity, error) {
	id := Identity{Name: name, LastMessage: lastMessage}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Validate checks that both name and seed are present
func (id Identity) Validate() error {
	err := validate.Struct(id)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewInvalidArgumentError(fieldName(fe.Field()), "must not be empty")
	}
	return NewInvalidArgumentError("identity", err.Error())
}

// Initials returns the first two characters of the name, or the whole
// name when it is shorter than that.
func (id Identity) Initials() string {
	return Initials(id.Name)
}

// Initials returns the first two runes of name. Names shorter than two
// runes are returned unchanged.
func Initials(name string) string {
	return lo.Substring(name, 0, 2)
}

func fieldName(structField string) string {
	switch structField {
	case "LastMessage":
		return "lastMessage"
	case "Name":
		return "name"
	default:
		return structField
	}
}
