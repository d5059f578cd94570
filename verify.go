package libp2ptls

import (
	"bytes"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"time"

	"github.com/libp2p/go-libp2p-tls/identity"
)

// VerifyPeerCertificate parses a peer's raw DER certificate, validates its
// self-signature and validity window, extracts and verifies the embedded
// libp2p cross-signature, and derives the remote PeerId. If expectedPeerID
// is non-empty, the derived PeerId must match it exactly.
//
// Every failure here is fatal to the handshake; none are retried.
func VerifyPeerCertificate(rawCert []byte, expectedPeerID identity.ID) (identity.ID, error) {
	cert, err := x509.ParseCertificate(rawCert)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCertificate, err)
	}

	now := time.Now()
	if cert.NotBefore.After(now) {
		return "", ErrCertificateNotYetValid
	}
	if cert.NotAfter.Before(now) {
		return "", ErrCertificateExpired
	}

	if err := cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSelfSignature, err)
	}

	if !bytes.Equal(cert.RawSubject, cert.RawIssuer) {
		return "", ErrNotSelfSigned
	}

	ext, ok := findExtension(cert, extensionOID)
	if !ok {
		return "", ErrMissingLibp2pExtension
	}

	var parsed libp2pKeyExtension
	rest, err := asn1.Unmarshal(ext.Value, &parsed)
	if err != nil || len(rest) != 0 {
		return "", ErrMalformedLibp2pExtension
	}

	pubProto, err := identity.DecodePublicKeyProto(parsed.PublicKey)
	if err != nil {
		return "", err
	}
	pub, err := identity.UnmarshalPublicKey(pubProto)
	if err != nil {
		return "", err
	}

	payload, err := encodeSignaturePayload(cert.RawSubjectPublicKeyInfo)
	if err != nil {
		return "", err
	}
	if !pub.Verify(payload, parsed.Signature) {
		return "", ErrInvalidCrossSignature
	}

	remotePeerID, err := identity.FromPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("derive remote peer id: %w", err)
	}

	if expectedPeerID != "" && !expectedPeerID.Equal(remotePeerID) {
		return "", ErrUnexpectedPeer
	}

	return remotePeerID, nil
}

func findExtension(cert *x509.Certificate, oid asn1.ObjectIdentifier) (x509.Extension, bool) {
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oid) {
			return ext, true
		}
	}
	return x509.Extension{}, false
}
