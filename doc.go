// Package libp2ptls implements the libp2p TLS 1.3 handshake core: mutual
// peer authentication by embedding a libp2p identity's signature over an
// ephemeral TLS certificate inside a custom X.509 extension.
//
// It covers certificate generation (GenerateCertificate), certificate
// verification and PeerId derivation (VerifyPeerCertificate), the
// three-variant identity key abstraction (package identity), and a duplex
// byte-stream bridge (package streambridge) for callers whose transport
// exposes an async push/pull stream rather than a net.Conn.
//
// Out of scope: TLS record-layer/AEAD/key-schedule (provided by
// crypto/tls), connection management, multiaddress resolution, relay
// circuits, and protocol negotiation above the secured stream. Session
// resumption, certificate-chain validation beyond the self-signed depth-1
// case, and cipher-suite policy beyond TLS 1.3 defaults are non-goals.
package libp2ptls
