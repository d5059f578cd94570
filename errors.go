package libp2ptls

import (
	"errors"

	"github.com/libp2p/go-libp2p-tls/identity"
)

// ErrUnsupportedKeyType and ErrMalformedKey are re-exported from the
// identity package so callers can switch on a single error set regardless
// of whether the failure surfaced during key decoding or certificate
// verification.
var (
	ErrUnsupportedKeyType = identity.ErrUnsupportedKeyType
	ErrMalformedKey       = identity.ErrMalformedKey
)

// Error kinds surfaced by certificate generation and verification. None of
// these are retried inside the package; a handshake that produces one of
// them is dead.
var (
	ErrInvalidCertificate       = errors.New("libp2ptls: invalid certificate")
	ErrCertificateNotYetValid   = errors.New("libp2ptls: certificate not yet valid")
	ErrCertificateExpired       = errors.New("libp2ptls: certificate expired")
	ErrInvalidSelfSignature     = errors.New("libp2ptls: invalid self-signature")
	ErrNotSelfSigned            = errors.New("libp2ptls: certificate is not self-signed")
	ErrMissingLibp2pExtension   = errors.New("libp2ptls: missing libp2p extension")
	ErrMalformedLibp2pExtension = errors.New("libp2ptls: malformed libp2p extension")
	ErrInvalidCrossSignature    = errors.New("libp2ptls: invalid cross-signature")
	ErrUnexpectedPeer           = errors.New("libp2ptls: unexpected remote peer")
	ErrMissingPrivateKey        = errors.New("libp2ptls: missing private key")
	ErrMissingPublicKey         = errors.New("libp2ptls: missing public key")
)
