package libp2ptls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/libp2p/go-libp2p-tls/identity"
)

// certValidityBackdate and certValidityPeriod fix the validity window every
// generated certificate carries: it starts an hour in the past to absorb
// clock skew between peers, and runs about ten years.
//
// The protocol elsewhere uses a ~100 year window; this package intentionally
// does not, because a bug in at least one interoperating ASN.1 encoder
// mishandles dates past 2050. Do not "fix" this without fixing that encoder
// first — other implementations still expect the shorter window.
const (
	certValidityBackdate = 1 * time.Hour
	certValidityPeriod   = 315360000 * time.Second // ~10 years
)

// serialPrefixToAvoid is the decimal prefix a generated serial number must
// never start with. A downstream ASN.1-length-encoding bug in at least one
// peer implementation misparses serials whose decimal form begins with this
// prefix; sampling again is cheaper than chasing that bug across every
// implementation that might dial us.
const serialPrefixToAvoid = "80"

// Certificate holds a freshly generated ephemeral TLS identity: a
// self-signed certificate binding an ECDSA P-256 key to the caller's
// libp2p identity, PEM-encoded.
type Certificate struct {
	CertPEM []byte
	KeyPEM  []byte
}

// GenerateCertificate builds a fresh ephemeral ECDSA P-256 keypair, signs
// its SubjectPublicKeyInfo with priv (the caller's long-lived libp2p
// identity key), and wraps the result in a self-signed X.509 certificate
// carrying the libp2p extension.
func GenerateCertificate(priv identity.PrivKey) (*Certificate, error) {
	if priv == nil {
		return nil, ErrMissingPrivateKey
	}
	pub := priv.GetPublic()
	if pub == nil {
		return nil, ErrMissingPublicKey
	}

	certKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key: %w", err)
	}
	spkiDER, err := x509.MarshalPKIXPublicKey(&certKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal ephemeral public key: %w", err)
	}

	payload, err := encodeSignaturePayload(spkiDER)
	if err != nil {
		return nil, err
	}
	signature, err := priv.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("sign certificate key: %w", err)
	}

	pubKeyBytes, err := pub.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal identity public key: %w", err)
	}
	pubKeyProto := identity.EncodePublicKeyProto(identity.PublicKeyProto{
		Type: pub.Type(),
		Data: pubKeyBytes,
	})

	extValue, err := asn1.Marshal(libp2pKeyExtension{
		PublicKey: pubKeyProto,
		Signature: signature,
	})
	if err != nil {
		return nil, fmt.Errorf("encode libp2p extension: %w", err)
	}

	serial, err := randomSerialNumber()
	if err != nil {
		return nil, fmt.Errorf("generate serial number: %w", err)
	}

	now := time.Now()
	name := pkix.Name{CommonName: "libp2p"}
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      name,
		Issuer:       name,
		NotBefore:    now.Add(-certValidityBackdate),
		NotAfter:     now.Add(certValidityPeriod),
		ExtraExtensions: []pkix.Extension{{
			Id:       extensionOID,
			Critical: true,
			Value:    extValue,
		}},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &certKey.PublicKey, certKey)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(certKey)
	if err != nil {
		return nil, fmt.Errorf("marshal ephemeral private key: %w", err)
	}

	return &Certificate{
		CertPEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER}),
		KeyPEM:  encodePrivateKeyPEM(keyDER),
	}, nil
}

// encodePrivateKeyPEM renders keyDER as a PKCS#8 "PRIVATE KEY" PEM block
// without the trailing newline Go's pem.Encode normally appends.
func encodePrivateKeyPEM(keyDER []byte) []byte {
	block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	return []byte(strings.TrimSuffix(string(block), "\n"))
}

// randomSerialNumber samples a non-negative integer below 2^52 whose
// decimal representation does not begin with "80" (see
// serialPrefixToAvoid), re-sampling as needed.
func randomSerialNumber() (*big.Int, error) {
	max := new(big.Int).Lsh(big.NewInt(1), 52)
	for {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(n.String(), serialPrefixToAvoid) {
			return n, nil
		}
	}
}
