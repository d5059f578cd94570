package libp2ptls

import "encoding/asn1"

// extensionOID is the X.509 extension OID that carries the libp2p identity
// binding: 1.3.6.1.4.1.53594.1.1.
var extensionOID = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 53594, 1, 1}

// libp2pKeyExtension is the DER-encoded value of the libp2p extension: a
// SEQUENCE of two OCTET STRINGs, the marshaled libp2p PublicKey protobuf
// followed by the identity key's signature over the SignaturePayload.
type libp2pKeyExtension struct {
	PublicKey []byte
	Signature []byte
}
