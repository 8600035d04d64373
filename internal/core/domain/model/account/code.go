package account

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// CodeTTL is how long a one-time verification code stays valid.
const CodeTTL = 10 * time.Minute

// NewVerificationCode generates a random 6-digit one-time code.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
