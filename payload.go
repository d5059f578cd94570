package libp2ptls

import (
	"bytes"
	"crypto/x509"
	"fmt"
)

// signaturePayloadPrefix is prepended, verbatim and without a trailing NUL,
// to the canonicalized certificate SPKI before it is signed by the identity
// key.
const signaturePayloadPrefix = "libp2p-tls-handshake:"

// encodeSignaturePayload builds the exact byte sequence that gets signed by
// (and verified against) the libp2p identity key: the ASCII prefix followed
// by the DER encoding of the certificate's SubjectPublicKeyInfo, canonicalized
// by parsing and re-serializing it. Canonicalizing tolerates a non-canonical
// DER encoding on the input side while guaranteeing both peers compute the
// identical payload for the identical key.
func encodeSignaturePayload(spkiDER []byte) ([]byte, error) {
	pub, err := x509.ParsePKIXPublicKey(spkiDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCertificate, err)
	}
	canonical, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCertificate, err)
	}
	var buf bytes.Buffer
	buf.WriteString(signaturePayloadPrefix)
	buf.Write(canonical)
	return buf.Bytes(), nil
}
