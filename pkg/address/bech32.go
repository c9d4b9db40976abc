package address

import "strings"

// bech32Charset is the 32-character bech32 data alphabet. The index of a
// character is its 5-bit value.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// bech32Separator divides the human-readable prefix from the data
	// part. Prefixes may contain '1' themselves, so decoding splits on
	// the LAST occurrence.
	bech32Separator = '1'

	// bech32ChecksumLen is the number of trailing 5-bit checksum groups.
	bech32ChecksumLen = 6

	// bech32MaxLength bounds the whole string per BIP-173.
	bech32MaxLength = 90

	// bech32MaxHRPLength bounds the human-readable prefix.
	bech32MaxHRPLength = 83
)

// bech32Index maps a byte to its 5-bit value in the charset, or -1.
var bech32Index = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(bech32Charset); i++ {
		idx[bech32Charset[i]] = int8(i)
	}
	return
}()

// ChecksumVariant selects which bech32 checksum construction applies.
// Witness version 0 addresses use Bech32; version 1 and later use Bech32m.
// The two differ only in the final constant, and neither ever verifies
// under the other's.
type ChecksumVariant int

const (
	VariantBech32  ChecksumVariant = iota // BIP-173, constant 1
	VariantBech32m                        // BIP-350, constant 0x2bc830a3
)

// String returns the variant name.
func (v ChecksumVariant) String() string {
	if v == VariantBech32m {
		return "bech32m"
	}
	return "bech32"
}

// constant returns the residue the polymod must equal for a valid checksum.
func (v ChecksumVariant) constant() uint32 {
	if v == VariantBech32m {
		return 0x2bc830a3
	}
	return 1
}

// bech32Generators are the BCH code generator constants XORed into the
// accumulator during the polymod computation.
var bech32Generators = [5]uint32{
	0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3,
}

// bech32Polymod runs the BCH-style generator polynomial over the given
// 5-bit groups and returns the 30-bit accumulator.
func bech32Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if b>>uint(i)&1 == 1 {
				chk ^= bech32Generators[i]
			}
		}
	}
	return chk
}

// bech32HRPExpand expands the human-readable prefix for checksumming: the
// high 3 bits of each character, a zero separator group, then the low 5
// bits of each character.
func bech32HRPExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// VerifyChecksum reports whether the data groups, which must include the
// six trailing checksum groups, verify against the given variant for the
// given human-readable prefix. The check is strict per variant: data
// checksummed under Bech32 never verifies as Bech32m and vice versa.
func VerifyChecksum(hrp string, data []byte, variant ChecksumVariant) bool {
	values := append(bech32HRPExpand(hrp), data...)
	return bech32Polymod(values) == variant.constant()
}

// createChecksum computes the six checksum groups for the prefix and data
// under the given variant.
func createChecksum(hrp string, data []byte, variant ChecksumVariant) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, make([]byte, bech32ChecksumLen)...)
	polymod := bech32Polymod(values) ^ variant.constant()
	cksum := make([]byte, bech32ChecksumLen)
	for i := range cksum {
		cksum[i] = byte(polymod >> uint(5*(5-i)) & 31)
	}
	return cksum
}

// DecodeBech32 decodes a bech32 string into its human-readable prefix and
// 5-bit data groups. The returned groups still include the six checksum
// groups; checksum verification is a separate step because the variant to
// verify against depends on the witness version inside the data.
//
// The string must be entirely lower case or entirely upper case, contain
// only characters in the 33-126 range, and hold the separator with at
// least one prefix character before it and six data characters after it.
func DecodeBech32(s string) (string, []byte, error) {
	if len(s) == 0 {
		return "", nil, decodeError(ErrEmpty, "empty bech32 string")
	}
	if len(s) > bech32MaxLength {
		return "", nil, decodeErrorf(ErrTooLong,
			"bech32 string length %d exceeds maximum %d", len(s), bech32MaxLength)
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			return "", nil, decodeErrorf(ErrInvalidCharacter,
				"character %#x at position %d outside printable ASCII", c, i)
		}
		hasLower = hasLower || ('a' <= c && c <= 'z')
		hasUpper = hasUpper || ('A' <= c && c <= 'Z')
	}
	if hasLower && hasUpper {
		return "", nil, decodeError(ErrMixedCase,
			"bech32 string mixes upper and lower case")
	}
	s = strings.ToLower(s)

	pos := strings.LastIndexByte(s, bech32Separator)
	if pos < 0 {
		return "", nil, decodeError(ErrNoSeparator,
			"bech32 string has no separator '1'")
	}
	if pos == 0 {
		return "", nil, decodeError(ErrNoSeparator,
			"bech32 human-readable prefix is empty")
	}
	if pos > bech32MaxHRPLength {
		return "", nil, decodeErrorf(ErrTooLong,
			"bech32 prefix length %d exceeds maximum %d", pos, bech32MaxHRPLength)
	}
	if len(s)-(pos+1) < bech32ChecksumLen {
		return "", nil, decodeErrorf(ErrTooShort,
			"bech32 data part has %d characters, need at least %d",
			len(s)-(pos+1), bech32ChecksumLen)
	}

	hrp := s[:pos]
	data := make([]byte, 0, len(s)-pos-1)
	for i := pos + 1; i < len(s); i++ {
		v := bech32Index[s[i]]
		if v < 0 {
			return "", nil, decodeErrorf(ErrInvalidCharacter,
				"invalid bech32 data character %q at position %d", s[i], i)
		}
		data = append(data, byte(v))
	}
	return hrp, data, nil
}

// EncodeBech32 encodes the prefix and 5-bit data groups, appending a
// checksum computed under the given variant. The data must not already
// carry a checksum.
func EncodeBech32(hrp string, data []byte, variant ChecksumVariant) (string, error) {
	if len(hrp) == 0 {
		return "", decodeError(ErrNoSeparator, "empty human-readable prefix")
	}
	total := len(hrp) + 1 + len(data) + bech32ChecksumLen
	if total > bech32MaxLength {
		return "", decodeErrorf(ErrTooLong,
			"encoded length %d would exceed maximum %d", total, bech32MaxLength)
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 || ('A' <= c && c <= 'Z') {
			return "", decodeErrorf(ErrInvalidCharacter,
				"invalid prefix character %#x at position %d", c, i)
		}
	}

	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte(bech32Separator)
	combined := append(append([]byte(nil), data...), createChecksum(hrp, data, variant)...)
	for _, v := range combined {
		if v >= 32 {
			return "", decodeErrorf(ErrInvalidCharacter,
				"data group value %d does not fit in 5 bits", v)
		}
		sb.WriteByte(bech32Charset[v])
	}
	return sb.String(), nil
}
