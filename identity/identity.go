// Package identity implements the libp2p identity-key abstraction: a
// polymorphic key over {Ed25519, Secp256k1, RSA} that can marshal itself to
// the libp2p PublicKey wire form, sign, and verify, independent of which
// concrete key type backs it.
package identity

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"

	"github.com/btcsuite/btcd/btcec"
)

// PubKey is the verification half of an identity key.
type PubKey interface {
	// Type reports which of the three supported variants this key is.
	Type() KeyType
	// Marshal returns the per-variant wire encoding of the public key:
	// raw 32 bytes for Ed25519, a 33-byte compressed point for Secp256k1,
	// or DER-encoded SubjectPublicKeyInfo for RSA.
	Marshal() ([]byte, error)
	// Verify reports whether sig is a valid signature over msg by this
	// key. It returns false (never panics or leaks a decoding error) on
	// any malformed signature.
	Verify(msg, sig []byte) bool
}

// PrivKey is the signing half of an identity key.
type PrivKey interface {
	Type() KeyType
	// Sign produces an algorithm-specific signature over msg.
	Sign(msg []byte) ([]byte, error)
	// GetPublic returns the corresponding PubKey.
	GetPublic() PubKey
}

// UnmarshalPublicKey constructs a PubKey from a decoded PublicKeyProto. It
// fails with ErrUnsupportedKeyType if typ is outside the three variants, and
// with ErrMalformedKey if data is not well-formed for that variant.
func UnmarshalPublicKey(p PublicKeyProto) (PubKey, error) {
	switch p.Type {
	case Ed25519:
		return unmarshalEd25519PublicKey(p.Data)
	case Secp256k1:
		return unmarshalSecp256k1PublicKey(p.Data)
	case RSA:
		return unmarshalRSAPublicKey(p.Data)
	default:
		return nil, ErrUnsupportedKeyType
	}
}

// UnmarshalPrivateKey constructs a PrivKey from the type+data protobuf wire
// form described in keycodec.go. It fails with ErrMalformedKey if raw is not
// a well-formed message (including a type enum outside the three variants)
// or if the data is not well-formed for its variant.
func UnmarshalPrivateKey(raw []byte) (PrivKey, error) {
	p, err := decodePrivateKeyProto(raw)
	if err != nil {
		return nil, err
	}
	switch p.Type {
	case Ed25519:
		return unmarshalEd25519PrivateKey(p.Data)
	case Secp256k1:
		return unmarshalSecp256k1PrivateKey(p.Data)
	case RSA:
		return unmarshalRSAPrivateKey(p.Data)
	default:
		return nil, ErrUnsupportedKeyType
	}
}

// ---- Ed25519 ----

type ed25519PubKey struct{ k ed25519.PublicKey }
type ed25519PrivKey struct{ k ed25519.PrivateKey }

func unmarshalEd25519PublicKey(data []byte) (PubKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return nil, ErrMalformedKey
	}
	return &ed25519PubKey{k: ed25519.PublicKey(data)}, nil
}

func unmarshalEd25519PrivateKey(data []byte) (PrivKey, error) {
	if len(data) != ed25519.PrivateKeySize {
		return nil, ErrMalformedKey
	}
	return &ed25519PrivKey{k: ed25519.PrivateKey(data)}, nil
}

func (k *ed25519PubKey) Type() KeyType { return Ed25519 }
func (k *ed25519PubKey) Marshal() ([]byte, error) {
	return append([]byte(nil), k.k...), nil
}
func (k *ed25519PubKey) Verify(msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(k.k, msg, sig)
}

func (k *ed25519PrivKey) Type() KeyType { return Ed25519 }
func (k *ed25519PrivKey) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.k, msg), nil
}
func (k *ed25519PrivKey) GetPublic() PubKey {
	return &ed25519PubKey{k: k.k.Public().(ed25519.PublicKey)}
}

// ---- Secp256k1 ----

type secp256k1PubKey struct{ k *btcec.PublicKey }
type secp256k1PrivKey struct{ k *btcec.PrivateKey }

func unmarshalSecp256k1PublicKey(data []byte) (PubKey, error) {
	k, err := btcec.ParsePubKey(data, btcec.S256())
	if err != nil {
		return nil, ErrMalformedKey
	}
	return &secp256k1PubKey{k: k}, nil
}

func unmarshalSecp256k1PrivateKey(data []byte) (PrivKey, error) {
	if len(data) != 32 {
		return nil, ErrMalformedKey
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), data)
	return &secp256k1PrivKey{k: priv}, nil
}

func (k *secp256k1PubKey) Type() KeyType { return Secp256k1 }
func (k *secp256k1PubKey) Marshal() ([]byte, error) {
	return k.k.SerializeCompressed(), nil
}
func (k *secp256k1PubKey) Verify(msg, sig []byte) bool {
	s, err := btcec.ParseSignature(sig, btcec.S256())
	if err != nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return s.Verify(digest[:], k.k)
}

func (k *secp256k1PrivKey) Type() KeyType { return Secp256k1 }
func (k *secp256k1PrivKey) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	sig, err := k.k.Sign(digest[:])
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}
func (k *secp256k1PrivKey) GetPublic() PubKey {
	return &secp256k1PubKey{k: k.k.PubKey()}
}

// ---- RSA ----

type rsaPubKey struct {
	k   *rsa.PublicKey
	der []byte
}
type rsaPrivKey struct{ k *rsa.PrivateKey }

func unmarshalRSAPublicKey(data []byte) (PubKey, error) {
	pub, err := x509.ParsePKIXPublicKey(data)
	if err != nil {
		return nil, ErrMalformedKey
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, ErrMalformedKey
	}
	return &rsaPubKey{k: rsaPub, der: append([]byte(nil), data...)}, nil
}

func unmarshalRSAPrivateKey(data []byte) (PrivKey, error) {
	k, err := x509.ParsePKCS1PrivateKey(data)
	if err != nil {
		return nil, ErrMalformedKey
	}
	return &rsaPrivKey{k: k}, nil
}

func (k *rsaPubKey) Type() KeyType { return RSA }
func (k *rsaPubKey) Marshal() ([]byte, error) {
	if k.der != nil {
		return append([]byte(nil), k.der...), nil
	}
	return x509.MarshalPKIXPublicKey(k.k)
}
func (k *rsaPubKey) Verify(msg, sig []byte) bool {
	digest := sha256.Sum256(msg)
	return rsa.VerifyPKCS1v15(k.k, crypto.SHA256, digest[:], sig) == nil
}

func (k *rsaPrivKey) Type() KeyType { return RSA }
func (k *rsaPrivKey) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	return rsa.SignPKCS1v15(rand.Reader, k.k, crypto.SHA256, digest[:])
}
func (k *rsaPrivKey) GetPublic() PubKey {
	der, err := x509.MarshalPKIXPublicKey(&k.k.PublicKey)
	if err != nil {
		der = nil
	}
	return &rsaPubKey{k: &k.k.PublicKey, der: der}
}
