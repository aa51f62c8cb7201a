package password

import (
	"sync"

	"hotel-backoffice/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

func HashPassword(plain string) (string, error) {
	if plain == "" || len(plain) > maxPasswordBytes {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	case err != nil:
		return errs.Wrap(err, "compare password")
	}
	return nil
}

// BurnComparison spends the same bcrypt work as ComparePassword against a
// throwaway hash. Login calls it for unknown emails so response time does not
// reveal which addresses have accounts.
func BurnComparison(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plain))
}
