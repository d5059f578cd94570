// Package pb implements the protobuf wire format shared by libp2p's
// PublicKey and PrivateKey messages: a varint type tag (field 1) followed by
// a length-delimited byte payload (field 2). It is hand-written rather than
// protoc-generated, but uses gogo/protobuf's varint helpers so the framing
// stays byte-compatible with code generated by protoc-gen-gogo.
package pb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/gogo/protobuf/proto"
)

// KeyType mirrors the enum carried in field 1 of both PublicKey and
// PrivateKey messages.
type KeyType int32

const (
	KeyType_Ed25519   KeyType = 0
	KeyType_RSA       KeyType = 1
	KeyType_Secp256k1 KeyType = 2
)

const (
	fieldType = 1
	fieldData = 2

	wireVarint = 0
	wireBytes  = 2
)

// ErrTruncated is returned when a length-delimited field claims more bytes
// than remain in the buffer.
var ErrTruncated = errors.New("pb: truncated message")

// ErrUnknownKeyType is returned when the type field carries a value outside
// {Ed25519, RSA, Secp256k1}.
var ErrUnknownKeyType = errors.New("pb: unrecognized key type")

// Key is the wire shape shared by PublicKey and PrivateKey: a type tag and
// an opaque data payload whose encoding is type-specific.
type Key struct {
	Type KeyType
	Data []byte
}

// Marshal encodes k as `type=1 (varint), data=2 (bytes)`, skipping the type
// field when it is the zero value (Ed25519), matching protobuf's default
// field-omission rule.
func Marshal(k Key) []byte {
	var buf bytes.Buffer
	if k.Type != KeyType_Ed25519 {
		writeTag(&buf, fieldType, wireVarint)
		buf.Write(proto.EncodeVarint(uint64(k.Type)))
	}
	writeTag(&buf, fieldData, wireBytes)
	buf.Write(proto.EncodeVarint(uint64(len(k.Data))))
	buf.Write(k.Data)
	return buf.Bytes()
}

func writeTag(buf *bytes.Buffer, field int, wireType int) {
	buf.Write(proto.EncodeVarint(uint64(field)<<3 | uint64(wireType)))
}

// Unmarshal decodes a Key, defaulting Type to Ed25519 and Data to nil.
// Unknown field numbers are skipped by their wire type, per the protobuf
// forward-compatibility rule; fields with the deprecated group wire types
// (3 and 4) are not skipped and fail with ErrTruncated. It fails with
// ErrTruncated if any field runs past the end of b, and with
// ErrUnknownKeyType if the decoded type enum is not one of the three known
// values.
func Unmarshal(b []byte) (Key, error) {
	k := Key{Type: KeyType_Ed25519}
	r := bytes.NewReader(b)
	sawType := false
	for r.Len() > 0 {
		tag, err := binary.ReadUvarint(r)
		if err != nil {
			return Key{}, ErrTruncated
		}
		field := int(tag >> 3)
		wireType := int(tag & 0x7)
		switch wireType {
		case wireVarint:
			v, err := binary.ReadUvarint(r)
			if err != nil {
				return Key{}, ErrTruncated
			}
			if field == fieldType {
				k.Type = KeyType(v)
				sawType = true
			}
		case wireBytes:
			l, err := binary.ReadUvarint(r)
			if err != nil {
				return Key{}, ErrTruncated
			}
			if uint64(r.Len()) < l {
				return Key{}, ErrTruncated
			}
			data := make([]byte, l)
			if _, err := io.ReadFull(r, data); err != nil {
				return Key{}, ErrTruncated
			}
			if field == fieldData {
				k.Data = data
			}
		case 1, 5: // fixed64, fixed32
			n := 8
			if wireType == 5 {
				n = 4
			}
			if r.Len() < n {
				return Key{}, ErrTruncated
			}
			if _, err := r.Seek(int64(n), io.SeekCurrent); err != nil {
				return Key{}, ErrTruncated
			}
		default:
			return Key{}, ErrTruncated
		}
	}
	if sawType {
		switch k.Type {
		case KeyType_Ed25519, KeyType_RSA, KeyType_Secp256k1:
		default:
			return Key{}, ErrUnknownKeyType
		}
	}
	return k, nil
}
