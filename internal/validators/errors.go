package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidType       = errors.New("invalid item type")
	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrInvalidCardNumber = errors.New("card number must contain 12 to 19 digits")
	ErrInvalidCardExpiry = errors.New("card expiry must be MM/YY")
	ErrInvalidCardCVV    = errors.New("card cvv must be 3 or 4 digits")
	ErrFieldTooLong      = errors.New("field is too long")
)
