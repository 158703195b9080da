package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/akgarhwal/vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldType targets the password/card discriminator.
	FieldType = "type"

	// FieldName targets the display name used for search.
	FieldName = "name"

	// FieldCard targets card number, expiry and CVV. Empty values pass;
	// the form leaves them optional.
	FieldCard = "card"

	// FieldLengths caps every free-text field.
	FieldLengths = "lengths"
)

const (
	maxNameLength  = 256
	maxFieldLength = 4096
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ItemPayloadValidator implements [Validator] for models.ItemPayload and
// models.DecryptedItem, by value or pointer.
type ItemPayloadValidator struct {
}

func NewItemPayloadValidator() Validator {
	return &ItemPayloadValidator{}
}

func (v *ItemPayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.ItemPayload:
		return v.validatePayload(ctx, *value, fields...)

	case models.DecryptedItem:
		return v.validatePayload(ctx, value.ItemPayload, fields...)
	case *models.DecryptedItem:
		return v.validatePayload(ctx, value.ItemPayload, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemPayloadValidator) validatePayload(_ context.Context, p models.ItemPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName, FieldCard, FieldLengths}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !p.Type.Valid() {
				return ErrInvalidType
			}
		case FieldName:
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldCard:
			if p.Type != models.ItemTypeCard {
				continue
			}
			if err := validateCard(p); err != nil {
				return err
			}
		case FieldLengths:
			for _, s := range []string{p.Username, p.Password, p.URL, p.CardHolder} {
				if len(s) > maxFieldLength {
					return ErrFieldTooLong
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCard(p models.ItemPayload) error {
	if p.CardNumber != "" {
		digits := strings.NewReplacer(" ", "", "-", "").Replace(p.CardNumber)
		if len(digits) < 12 || len(digits) > 19 || strings.TrimLeft(digits, "0123456789") != "" {
			return ErrInvalidCardNumber
		}
	}
	if p.CardExpiry != "" && !expiryPattern.MatchString(p.CardExpiry) {
		return ErrInvalidCardExpiry
	}
	if p.CardCVV != "" && !cvvPattern.MatchString(p.CardCVV) {
		return ErrInvalidCardCVV
	}
	return nil
}
