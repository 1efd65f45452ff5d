package sigv2

// Algorithm identifies the keyed hash used to sign a request. It is sent
// as the SignatureMethod query parameter.
type Algorithm string

const (
	// AlgorithmHMACSHA256 is HMAC using SHA-256.
	AlgorithmHMACSHA256 Algorithm = "HmacSHA256"
)

// Version is the SignatureVersion query parameter value.
const Version = "2"

// Query parameter names that take part in signing.
const (
	ParamAccessKeyID      = "AWSAccessKeyId"
	ParamSellerID         = "SellerId"
	ParamTimestamp        = "Timestamp"
	ParamSignature        = "Signature"
	ParamSignatureMethod  = "SignatureMethod"
	ParamSignatureVersion = "SignatureVersion"
)

// TimestampLayout formats the Timestamp parameter as ISO 8601 in UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// String returns the SignatureMethod value for the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// Signer creates signatures over canonical strings.
type Signer interface {
	// Sign produces a signature over the given message bytes.
	Sign(message []byte) ([]byte, error)

	// Algorithm returns the algorithm identifier for this signer.
	Algorithm() Algorithm

	// KeyID returns the access key id sent as AWSAccessKeyId.
	KeyID() string
}

// Verifier validates signatures over canonical strings.
type Verifier interface {
	// Verify checks that signature is valid for the given message bytes.
	// Returns nil on success, non-nil on failure.
	Verify(message, signature []byte) error

	// Algorithm returns the algorithm identifier for this verifier.
	Algorithm() Algorithm

	// KeyID returns the access key id for this verifier.
	KeyID() string
}
