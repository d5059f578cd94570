package libp2ptls

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/libp2p/go-libp2p-tls/identity"
)

// Identity binds a long-lived libp2p identity key to the ephemeral
// certificates this package mints per connection: one Identity is created
// per local peer and reused to secure many connections, each of which gets
// its own fresh Certificate.
type Identity struct {
	priv   identity.PrivKey
	peerID identity.ID
}

// NewIdentity derives the local PeerId from priv and returns an Identity
// that can generate per-connection TLS configs.
func NewIdentity(priv identity.PrivKey) (*Identity, error) {
	if priv == nil {
		return nil, ErrMissingPrivateKey
	}
	peerID, err := identity.FromPublicKey(priv.GetPublic())
	if err != nil {
		return nil, fmt.Errorf("derive local peer id: %w", err)
	}
	return &Identity{priv: priv, peerID: peerID}, nil
}

// PeerID returns the local PeerId this Identity authenticates as.
func (i *Identity) PeerID() identity.ID { return i.peerID }

// ConfigForPeer returns a tls.Config good for a single handshake with the
// given expected remote peer (pass "" when dialing without a known remote
// identity, e.g. the first hop of a discovery flow). The returned channel
// receives the verified remote PeerId once the handshake's certificate
// callback has run; it is buffered so the callback never blocks.
func (i *Identity) ConfigForPeer(expectedPeerID identity.ID) (*tls.Config, <-chan identity.ID, error) {
	cert, err := GenerateCertificate(i.priv)
	if err != nil {
		return nil, nil, err
	}
	tlsCert, err := tls.X509KeyPair(cert.CertPEM, cert.KeyPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("load generated certificate: %w", err)
	}

	remotePeerID := make(chan identity.ID, 1)
	conf := &tls.Config{
		MinVersion:         tls.VersionTLS13,
		InsecureSkipVerify: true, // we verify the libp2p extension ourselves, not the chain
		ClientAuth:         tls.RequireAnyClientCert,
		Certificates:       []tls.Certificate{tlsCert},
		VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if len(rawCerts) != 1 {
				return fmt.Errorf("%w: expected exactly one certificate, got %d", ErrInvalidCertificate, len(rawCerts))
			}
			remote, err := VerifyPeerCertificate(rawCerts[0], expectedPeerID)
			if err != nil {
				return err
			}
			remotePeerID <- remote
			return nil
		},
	}
	return conf, remotePeerID, nil
}
