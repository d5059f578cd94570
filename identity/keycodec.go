package identity

import (
	"errors"

	"github.com/libp2p/go-libp2p-tls/identity/pb"
)

// KeyType identifies which of the three supported identity-key variants a
// PublicKey or PrivateKey wire message carries.
type KeyType = pb.KeyType

const (
	Ed25519   = pb.KeyType_Ed25519
	RSA       = pb.KeyType_RSA
	Secp256k1 = pb.KeyType_Secp256k1
)

// ErrMalformedKey is returned whenever key bytes do not decode into the
// shape their declared type requires: a truncated protobuf message, an
// unrecognized type enum, a wrong-length Ed25519 key, an invalid Secp256k1
// point, or an invalid RSA SubjectPublicKeyInfo.
var ErrMalformedKey = errors.New("identity: malformed key")

// ErrUnsupportedKeyType is returned when a key type falls outside
// {Ed25519, RSA, Secp256k1}.
var ErrUnsupportedKeyType = errors.New("identity: unsupported key type")

// PublicKeyProto is the libp2p PublicKey wire message: a type tag (field 1)
// and the type-specific encoding of the key data (field 2).
type PublicKeyProto struct {
	Type KeyType
	Data []byte
}

// EncodePublicKeyProto serializes a PublicKeyProto to its protobuf wire form.
func EncodePublicKeyProto(p PublicKeyProto) []byte {
	return pb.Marshal(pb.Key{Type: p.Type, Data: p.Data})
}

// DecodePublicKeyProto parses the protobuf wire form of a PublicKey message.
// It fails with ErrMalformedKey if a length-delimited field runs past the
// buffer end or the type enum is unrecognized.
func DecodePublicKeyProto(b []byte) (PublicKeyProto, error) {
	k, err := pb.Unmarshal(b)
	if err != nil {
		return PublicKeyProto{}, ErrMalformedKey
	}
	return PublicKeyProto{Type: k.Type, Data: k.Data}, nil
}

// privateKeyProto mirrors PublicKeyProto's wire shape for the local
// private-key representation a caller hands to GenerateCertificate.
type privateKeyProto struct {
	Type KeyType
	Data []byte
}

func decodePrivateKeyProto(b []byte) (privateKeyProto, error) {
	k, err := pb.Unmarshal(b)
	if err != nil {
		return privateKeyProto{}, ErrMalformedKey
	}
	return privateKeyProto{Type: k.Type, Data: k.Data}, nil
}

// EncodePrivateKeyProto serializes the raw bytes of a PrivKey into the same
// type+data wire shape used for public keys, for callers that need to
// persist or transmit a PeerId's private half (e.g. test fixtures).
func EncodePrivateKeyProto(typ KeyType, data []byte) []byte {
	return pb.Marshal(pb.Key{Type: typ, Data: data})
}
