package libp2ptls_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"

	"github.com/btcsuite/btcd/btcec"

	"github.com/libp2p/go-libp2p-tls/identity"
)

func newEd25519Priv() identity.PrivKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	k, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.Ed25519, priv))
	if err != nil {
		panic(err)
	}
	return k
}

func newSecp256k1Priv() identity.PrivKey {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	k, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.Secp256k1, priv.Serialize()))
	if err != nil {
		panic(err)
	}
	return k
}

func newRSAPriv() identity.PrivKey {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	der := x509.MarshalPKCS1PrivateKey(priv)
	k, err := identity.UnmarshalPrivateKey(identity.EncodePrivateKeyProto(identity.RSA, der))
	if err != nil {
		panic(err)
	}
	return k
}

// serialFromCertDER extracts the certificate's serial number as a decimal
// string, for the serial-policy property test.
func serialFromCertDER(der []byte) string {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		panic(err)
	}
	return cert.SerialNumber.String()
}
