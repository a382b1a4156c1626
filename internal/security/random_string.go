package security

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errAlphabetSize   = errors.New("alphabet must hold between 1 and 256 bytes")
)

// RandomString draws length bytes from alphabet using crypto/rand. Random bytes
// at or above the largest multiple of len(alphabet) are discarded to keep the
// draw unbiased.
func RandomString(length int, alphabet string) (string, error) {
	return randomString(rand.Reader, length, alphabet)
}

func randomString(source io.Reader, length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errAlphabetSize
	}

	size := len(alphabet)
	cutoff := 256 - 256%size
	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := io.ReadFull(source, buffer); err != nil {
			return "", err
		}
		for _, b := range buffer {
			if int(b) >= cutoff {
				continue
			}
			value = append(value, alphabet[int(b)%size])
			if len(value) == length {
				break
			}
		}
	}
	return string(value), nil
}
