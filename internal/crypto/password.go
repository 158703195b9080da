package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	passwordSpecials = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	passwordLetters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits   = "0123456789"

	passwordMinLength = 8
	passwordSpread    = 8
)

// GeneratePassword returns a random password of 8 to 15 characters with
// exactly two special symbols, at least one digit and one letter; the rest
// are alphanumeric. Positions are shuffled.
func GeneratePassword() (string, error) {
	n, err := randInt(passwordSpread)
	if err != nil {
		return "", err
	}
	length := passwordMinLength + n

	alphanumeric := passwordLetters + passwordDigits
	sets := []string{passwordSpecials, passwordSpecials, passwordDigits, passwordLetters}
	for len(sets) < length {
		sets = append(sets, alphanumeric)
	}

	password := make([]byte, length)
	for i, set := range sets {
		c, err := randChar(set)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := length - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randChar(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading random number: %w", err)
	}
	return int(v.Int64()), nil
}
