package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// Contact is the customer information step.
type Contact struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,contains=@"`
}

// Payment is the card form. Nothing is charged; the fields are only checked for shape.
type Payment struct {
	CardNumber string `json:"-" validate:"required,cardnumber"`
	CardName   string `json:"card_name" validate:"required"`
	Expiry     string `json:"-" validate:"required,expiry"`
	CVV        string `json:"-" validate:"required,number,min=3,max=4"`
}

// Last4 returns the final four card digits for display.
func (p Payment) Last4() string {
	digits := NormalizeCardNumber(p.CardNumber)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// NormalizeCardNumber removes whitespace from a card number.
func NormalizeCardNumber(number string) string {
	return strings.Join(strings.Fields(number), "")
}

// FormatCardNumber groups digits in fours, the way the card field displays them.
func FormatCardNumber(number string) string {
	digits := NormalizeCardNumber(number)
	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	return strings.Join(append(groups, digits), " ")
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return cardNumberPattern.MatchString(NormalizeCardNumber(fl.Field().String()))
	})
	v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

var fieldMessages = map[string]string{
	"FullName":   "Please enter your full name",
	"Email":      "Please enter a valid email",
	"CardNumber": "Please enter a valid card number",
	"CardName":   "Please enter the name on card",
	"Expiry":     "Please enter a valid expiry date (MM/YY)",
	"CVV":        "Please enter a valid security code",
}

// ValidationError names the first invalid field and the message shown for it.
type ValidationError struct {
	kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

// ValidateContact checks the contact step. Failures wrap [shared.ErrInvalidContact].
func ValidateContact(c Contact) error {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	return check(c, shared.ErrInvalidContact)
}

// ValidatePayment checks the card form. Failures wrap [shared.ErrInvalidPayment].
func ValidatePayment(p Payment) error {
	p.CardName = strings.TrimSpace(p.CardName)
	p.CVV = strings.TrimSpace(p.CVV)
	return check(p, shared.ErrInvalidPayment)
}

func check(s any, kind error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", kind, err)
	}

	field := fieldErrs[0].Field()
	return &ValidationError{kind: kind, Field: field, Message: fieldMessages[field]}
}
