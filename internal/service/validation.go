package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	maxNameLen  = 255
	maxEmailLen = 254
	maxPhoneLen = 20

	priceMaxDigits = 10
	pricePlaces    = 2

	MsgNameRequired  = "Name is required"
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Enter a valid email address."
	MsgPhoneFormat   = "Phone number must be in format: '+1234567890' or '123-456-7890'"
	MsgPriceRequired = "Price is required"
	MsgPricePositive = "Price must be positive"
	MsgStockNegative = "Stock cannot be negative"
)

var (
	phonePattern = regexp.MustCompile(`^\+?\d{1,4}[-\s]?\d{1,4}[-\s]?\d{1,9}$`)
	validate     = validator.New()
)

// ValidationErrors — упорядоченное отображение поле -> сообщения.
type ValidationErrors struct {
	fields []string
	msgs   map[string][]string
}

func (v *ValidationErrors) Add(field, msg string) {
	if v.msgs == nil {
		v.msgs = make(map[string][]string)
	}
	if _, ok := v.msgs[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.msgs[field] = append(v.msgs[field], msg)
}

func (v *ValidationErrors) Fields() []string { return v.fields }

func (v *ValidationErrors) Messages(field string) []string { return v.msgs[field] }

// Error склеивает все сообщения через "; " в порядке полей.
func (v *ValidationErrors) Error() string {
	var all []string
	for _, f := range v.fields {
		all = append(all, v.msgs[f]...)
	}
	return strings.Join(all, "; ")
}

func (v *ValidationErrors) Is(target error) bool { return target == ErrValidation }

func (v *ValidationErrors) orNil() error {
	if v == nil || len(v.fields) == 0 {
		return nil
	}
	return v
}

func tooLong(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

// ValidateCustomer проверяет поля клиента. Уникальность email проверяется отдельно по хранилищу.
func ValidateCustomer(in CustomerInput) error {
	v := &ValidationErrors{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		v.Add("name", MsgNameRequired)
	case utf8.RuneCountInString(name) > maxNameLen:
		v.Add("name", tooLong(maxNameLen))
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		v.Add("email", MsgEmailRequired)
	case utf8.RuneCountInString(email) > maxEmailLen:
		v.Add("email", tooLong(maxEmailLen))
	case validate.Var(email, "email") != nil:
		v.Add("email", MsgEmailInvalid)
	}

	if in.Phone != nil && *in.Phone != "" {
		phone := *in.Phone
		if !phonePattern.MatchString(phone) {
			v.Add("phone", MsgPhoneFormat)
		}
		if utf8.RuneCountInString(phone) > maxPhoneLen {
			v.Add("phone", tooLong(maxPhoneLen))
		}
	}

	return v.orNil()
}

func ValidateProduct(in ProductInput) error {
	v := &ValidationErrors{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		v.Add("name", MsgNameRequired)
	case utf8.RuneCountInString(name) > maxNameLen:
		v.Add("name", tooLong(maxNameLen))
	}

	if in.Price == nil {
		v.Add("price", MsgPriceRequired)
	} else {
		p := *in.Price
		if !p.IsPositive() {
			v.Add("price", MsgPricePositive)
		}
		if !p.Equal(p.Round(pricePlaces)) {
			v.Add("price", fmt.Sprintf("Ensure that there are no more than %d decimal places.", pricePlaces))
		}
		limit := decimal.New(1, priceMaxDigits-pricePlaces)
		if p.Abs().GreaterThanOrEqual(limit) {
			v.Add("price", fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", priceMaxDigits-pricePlaces))
		}
	}

	if in.Stock != nil && *in.Stock < 0 {
		v.Add("stock", MsgStockNegative)
	}

	return v.orNil()
}
