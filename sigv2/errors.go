package sigv2

import "errors"

// Signing errors.
var (
	// ErrNoSigner is returned when SignConfig has no Signer configured.
	ErrNoSigner = errors.New("sigv2: signer must not be nil")

	// ErrInvalidKey is returned when the secret key is empty.
	ErrInvalidKey = errors.New("sigv2: invalid key material")
)

// Verification errors.
var (
	// ErrNoResolver is returned when VerifyConfig has no KeyResolver configured.
	ErrNoResolver = errors.New("sigv2: key resolver must not be nil")

	// ErrSignatureNotFound is returned when the Signature or AWSAccessKeyId
	// query parameter is absent.
	ErrSignatureNotFound = errors.New("sigv2: signature not found")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("sigv2: signature verification failed")

	// ErrUnsupportedMethod is returned when SignatureMethod is not HmacSHA256.
	ErrUnsupportedMethod = errors.New("sigv2: unsupported signature method")

	// ErrUnsupportedVersion is returned when SignatureVersion is not 2.
	ErrUnsupportedVersion = errors.New("sigv2: unsupported signature version")

	// ErrTimestampSkew is returned when the Timestamp parameter is missing,
	// malformed, or too far from the verifier's clock.
	ErrTimestampSkew = errors.New("sigv2: timestamp outside allowed skew")

	// ErrUnknownKey is returned by resolvers that do not know the access key.
	ErrUnknownKey = errors.New("sigv2: unknown access key")
)

// Digest errors.
var (
	// ErrDigestMismatch is returned when Content-MD5 verification fails.
	ErrDigestMismatch = errors.New("sigv2: content md5 mismatch")
)
