package hash

import (
	"encoding/hex"
	"fmt"

	"github.com/unkn0wn-root/gosha1/errors"
	"github.com/unkn0wn-root/gosha1/internal/core/sha1"
)

const (
	Size      = sha1.Size
	BlockSize = sha1.BlockSize
)

// Sum returns the SHA-1 digest of data. data is never modified.
func Sum(data []byte) ([Size]byte, error) {
	d, err := sha1.Sum(data)
	return [Size]byte(d), err
}

func ComputeSHA1(data []byte) (string, error) {
	d, err := sha1.Sum(data)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// ParseHash decodes the 40-character lowercase form produced by ComputeSHA1.
func ParseHash(hash string) ([Size]byte, error) {
	var d [Size]byte
	if !ValidateHash(hash) {
		return d, errors.NewHashError("parse", fmt.Errorf("%q: %w", hash, errors.ErrInvalidHash))
	}
	if _, err := hex.Decode(d[:], []byte(hash)); err != nil {
		return d, errors.NewHashError("parse", fmt.Errorf("%q: %w", hash, errors.ErrInvalidHash))
	}
	return d, nil
}

func ValidateHash(hash string) bool {
	n := len(hash)
	if n != 2*Size {
		return false
	}
	for i := 0; i < n; i++ {
		char := hash[i]
		if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'f')) {
			return false
		}
	}
	return true
}

func ShortHash(hash string, length int) string {
	if length <= 0 || length > len(hash) {
		return hash
	}
	return hash[:length]
}
