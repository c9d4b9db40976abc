package address

import (
	"github.com/minio/sha256-simd"
)

// checksumLen is the number of trailing checksum bytes in a Base58Check
// string.
const checksumLen = 4

// base58Checksum computes the 4-byte Base58Check checksum: the first four
// bytes of SHA256(SHA256(data)).
func base58Checksum(data []byte) (cksum [checksumLen]byte) {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	copy(cksum[:], second[:checksumLen])
	return
}

// DecodeBase58Check decodes a Base58Check string and verifies its embedded
// checksum. On success it returns the version byte and the payload that
// follows it. Version byte policy (which versions name which address
// schemes) is the classifier's job, not this layer's: any version with a
// valid checksum decodes.
func DecodeBase58Check(s string) (byte, []byte, error) {
	decoded, err := DecodeBase58(s)
	if err != nil {
		return 0, nil, err
	}

	// 1 version byte plus 4 checksum bytes at minimum.
	if len(decoded) < checksumLen+1 {
		return 0, nil, decodeErrorf(ErrTooShort,
			"base58check decoded to %d bytes, need at least %d",
			len(decoded), checksumLen+1)
	}

	var cksum [checksumLen]byte
	copy(cksum[:], decoded[len(decoded)-checksumLen:])
	versionedPayload := decoded[:len(decoded)-checksumLen]
	if base58Checksum(versionedPayload) != cksum {
		return 0, nil, decodeError(ErrChecksumMismatch,
			"base58check checksum does not match")
	}

	return versionedPayload[0], versionedPayload[1:], nil
}

// EncodeBase58Check encodes the version byte and payload with a trailing
// 4-byte double-SHA256 checksum.
func EncodeBase58Check(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumLen)
	b = append(b, version)
	b = append(b, payload...)
	cksum := base58Checksum(b)
	b = append(b, cksum[:]...)
	return EncodeBase58(b)
}
