package identity_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/libp2p/go-libp2p-tls/identity"
)

var _ = Describe("PeerId", func() {
	It("uses the identity multihash for a short Ed25519 key", func() {
		edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
		Expect(err).ToNot(HaveOccurred())
		priv, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.Ed25519, edPriv))
		Expect(err).ToNot(HaveOccurred())

		id, err := identity.FromPublicKey(priv.GetPublic())
		Expect(err).ToNot(HaveOccurred())

		// identity multihash: varint code 0x00, varint length, then the raw bytes
		Expect(id[0]).To(Equal(byte(0x00)))
		_ = edPub
	})

	It("uses sha2-256 for a long RSA key", func() {
		rsaPriv, err := rsa.GenerateKey(rand.Reader, 2048)
		Expect(err).ToNot(HaveOccurred())
		der := x509.MarshalPKCS1PrivateKey(rsaPriv)
		priv, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.RSA, der))
		Expect(err).ToNot(HaveOccurred())

		id, err := identity.FromPublicKey(priv.GetPublic())
		Expect(err).ToNot(HaveOccurred())

		// sha2-256 multihash code is 0x12
		Expect(id[0]).To(Equal(byte(0x12)))
	})

	It("is deterministic and equal across repeated derivations", func() {
		edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
		Expect(err).ToNot(HaveOccurred())
		_ = edPub
		priv, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.Ed25519, edPriv))
		Expect(err).ToNot(HaveOccurred())

		id1, err := identity.FromPublicKey(priv.GetPublic())
		Expect(err).ToNot(HaveOccurred())
		id2, err := identity.FromPublicKey(priv.GetPublic())
		Expect(err).ToNot(HaveOccurred())
		Expect(id1.Equal(id2)).To(BeTrue())
		Expect(id1.MatchesPublicKey(priv.GetPublic())).To(BeTrue())
	})

	It("round-trips through its base58 text form", func() {
		edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
		Expect(err).ToNot(HaveOccurred())
		_ = edPub
		priv, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.Ed25519, edPriv))
		Expect(err).ToNot(HaveOccurred())

		id, err := identity.FromPublicKey(priv.GetPublic())
		Expect(err).ToNot(HaveOccurred())

		decoded, err := identity.Decode(id.Pretty())
		Expect(err).ToNot(HaveOccurred())
		Expect(decoded.Equal(id)).To(BeTrue())
	})
})
