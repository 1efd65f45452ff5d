package sigv2

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

type hmacSHA256Signer struct {
	key   []byte
	keyID string
}

// NewHMACSHA256Signer creates a Signer using HMAC-SHA256. keyID is the
// access key id and key is the secret access key.
func NewHMACSHA256Signer(keyID string, key []byte) (Signer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: secret access key must not be empty", ErrInvalidKey)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &hmacSHA256Signer{key: keyCopy, keyID: keyID}, nil
}

func (s *hmacSHA256Signer) Sign(message []byte) ([]byte, error) {
	return computeHMAC(s.key, message), nil
}

func (s *hmacSHA256Signer) Algorithm() Algorithm { return AlgorithmHMACSHA256 }
func (s *hmacSHA256Signer) KeyID() string        { return s.keyID }

type hmacSHA256Verifier struct {
	key   []byte
	keyID string
}

// NewHMACSHA256Verifier creates a Verifier using HMAC-SHA256.
func NewHMACSHA256Verifier(keyID string, key []byte) (Verifier, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: secret access key must not be empty", ErrInvalidKey)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &hmacSHA256Verifier{key: keyCopy, keyID: keyID}, nil
}

func (v *hmacSHA256Verifier) Verify(message, signature []byte) error {
	expected := computeHMAC(v.key, message)
	if !hmac.Equal(expected, signature) {
		return ErrSignatureInvalid
	}

	return nil
}

func (v *hmacSHA256Verifier) Algorithm() Algorithm { return AlgorithmHMACSHA256 }
func (v *hmacSHA256Verifier) KeyID() string        { return v.keyID }

func computeHMAC(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)

	return mac.Sum(nil)
}
