package identity

import (
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multihash"
)

// maxInlineKeyLength is the marshaled-PublicKey length threshold at or
// below which a PeerId embeds the key directly (the "identity" multihash) rather
// than hashing it, per the standard libp2p PeerId derivation rule.
const maxInlineKeyLength = 42

// ID is a libp2p peer identity: the multihash of a peer's marshaled
// PublicKey protobuf. Two IDs are equal iff their multihash digests are
// byte-equal.
type ID string

// FromPublicKey computes the canonical PeerId for pub: marshal it to the
// PublicKey protobuf form, then multihash it with the "identity" code if
// the marshaled form is 42 bytes or fewer, or SHA2-256 otherwise.
func FromPublicKey(pub PubKey) (ID, error) {
	keyBytes, err := pub.Marshal()
	if err != nil {
		return "", err
	}
	protoBytes := EncodePublicKeyProto(PublicKeyProto{Type: pub.Type(), Data: keyBytes})

	var mh []byte
	if len(protoBytes) <= maxInlineKeyLength {
		mh, err = multihash.Encode(protoBytes, multihash.IDENTITY)
	} else {
		mh, err = multihash.Sum(protoBytes, multihash.SHA2_256, -1)
	}
	if err != nil {
		return "", err
	}
	return ID(mh), nil
}

// Equal reports whether id and other carry byte-equal multihash digests.
func (id ID) Equal(other ID) bool {
	return id == other
}

// MatchesPublicKey reports whether id is the PeerId that pub derives to.
func (id ID) MatchesPublicKey(pub PubKey) bool {
	other, err := FromPublicKey(pub)
	if err != nil {
		return false
	}
	return id.Equal(other)
}

// String returns the base58btc text form of the PeerId, the same text as
// Pretty.
func (id ID) String() string {
	return id.Pretty()
}

// Pretty returns the base58btc text form of the PeerId.
func (id ID) Pretty() string {
	return base58.Encode([]byte(id))
}

// Decode parses the base58btc text form produced by Pretty/String.
func Decode(s string) (ID, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return "", err
	}
	if _, err := multihash.Cast(b); err != nil {
		return "", err
	}
	return ID(b), nil
}
