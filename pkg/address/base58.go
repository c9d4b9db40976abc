// Package address validates Bitcoin addresses and reports which scheme
// produced them: legacy Base58Check (P2PKH, P2SH) or bech32/bech32m segwit
// (P2WPKH, P2WSH, Taproot). Every decode path is a pure function of its
// input with an explicit success/failure result; nothing here touches the
// network or keeps state between calls.
package address

// base58Alphabet is the Bitcoin Base58 character set: digits and letters
// excluding 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// base58Index maps a byte to its value in the alphabet, or -1.
var base58Index = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		idx[base58Alphabet[i]] = int8(i)
	}
	return
}()

// DecodeBase58 decodes a Base58 string into the bytes it represents. The
// string is treated as a base-58 big integer accumulated with repeated
// multiply-add, and each leading '1' becomes one leading zero byte so that
// version-byte semantics survive the round trip.
func DecodeBase58(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, decodeError(ErrEmpty, "empty base58 string")
	}

	// Leading alphabet zeros ('1') encode literal zero bytes.
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	// log(58) / log(256) rounded up.
	size := len(s)*733/1000 + 1
	buf := make([]byte, size)
	for i := 0; i < len(s); i++ {
		digit := base58Index[s[i]]
		if digit < 0 {
			return nil, decodeErrorf(ErrInvalidCharacter,
				"invalid base58 character %q at position %d", s[i], i)
		}
		carry := int(digit)
		for j := size - 1; j >= 0; j-- {
			carry += 58 * int(buf[j])
			buf[j] = byte(carry & 0xff)
			carry >>= 8
		}
	}

	// Skip the buffer's leading zeros; the input's leading '1's already
	// account for them.
	i := 0
	for i < size && buf[i] == 0 {
		i++
	}

	out := make([]byte, zeros+size-i)
	copy(out[zeros:], buf[i:])
	return out, nil
}

// EncodeBase58 encodes bytes to a Base58 string. Leading zero bytes become
// leading '1' characters.
func EncodeBase58(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	// log(256) / log(58) rounded up.
	size := len(data)*138/100 + 1
	buf := make([]byte, size)
	for _, b := range data {
		carry := int(b)
		for j := size - 1; j >= 0; j-- {
			carry += 256 * int(buf[j])
			buf[j] = byte(carry % 58)
			carry /= 58
		}
	}

	i := 0
	for i < size && buf[i] == 0 {
		i++
	}

	out := make([]byte, zeros+size-i)
	for j := 0; j < zeros; j++ {
		out[j] = '1'
	}
	for j := zeros; i < size; i, j = i+1, j+1 {
		out[j] = base58Alphabet[buf[i]]
	}
	return string(out)
}
