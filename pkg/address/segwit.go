package address

const (
	// maxWitnessVersion is the highest witness version with a defined
	// address encoding.
	maxWitnessVersion = 16

	// minProgramLen and maxProgramLen bound witness programs for
	// versions 1 through 16. Version 0 programs must be exactly 20
	// (P2WPKH) or 32 (P2WSH) bytes.
	minProgramLen = 2
	maxProgramLen = 40
)

// convertBits regroups the values in data from fromBits-wide groups into
// toBits-wide groups. When pad is true an incomplete final group is
// zero-padded on the right, which is the encode direction. When pad is
// false any leftover bits must be the zero padding of a prior encode:
// a whole extra group or non-zero leftover bits fail with ErrPaddingError
// rather than being truncated.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<toBits - 1
	out := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))
	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, decodeErrorf(ErrInvalidCharacter,
				"group value %d does not fit in %d bits", v, fromBits)
		}
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits {
		return nil, decodeError(ErrPaddingError,
			"excess padding group after regrouping")
	} else if acc<<(toBits-bits)&maxv != 0 {
		return nil, decodeError(ErrPaddingError,
			"non-zero bits in final padding")
	}
	return out, nil
}

// extractSegwit interprets checksum-stripped 5-bit groups as a witness
// version followed by a witness program, regrouping the program into bytes
// with strict bit accounting and enforcing the per-version length rules.
func extractSegwit(data []byte) (byte, []byte, error) {
	if len(data) == 0 {
		return 0, nil, decodeError(ErrTooShort, "missing witness version group")
	}
	version := data[0]
	if version > maxWitnessVersion {
		return 0, nil, decodeErrorf(ErrInvalidWitnessVersion,
			"witness version %d exceeds maximum %d", version, maxWitnessVersion)
	}

	program, err := convertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if len(program) < minProgramLen || len(program) > maxProgramLen {
		return 0, nil, decodeErrorf(ErrInvalidProgramLength,
			"witness program length %d outside [%d, %d]",
			len(program), minProgramLen, maxProgramLen)
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return 0, nil, decodeErrorf(ErrInvalidProgramLength,
			"version 0 witness program must be 20 or 32 bytes, got %d",
			len(program))
	}
	return version, program, nil
}

// EncodeSegwit encodes a witness version and program as a segwit address
// for the given human-readable prefix. Version 0 uses the Bech32 checksum;
// versions 1-16 use Bech32m.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if version > maxWitnessVersion {
		return "", decodeErrorf(ErrInvalidWitnessVersion,
			"witness version %d exceeds maximum %d", version, maxWitnessVersion)
	}
	if len(program) < minProgramLen || len(program) > maxProgramLen {
		return "", decodeErrorf(ErrInvalidProgramLength,
			"witness program length %d outside [%d, %d]",
			len(program), minProgramLen, maxProgramLen)
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return "", decodeErrorf(ErrInvalidProgramLength,
			"version 0 witness program must be 20 or 32 bytes, got %d",
			len(program))
	}

	groups, err := convertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data := append([]byte{version}, groups...)

	variant := VariantBech32
	if version >= 1 {
		variant = VariantBech32m
	}
	return EncodeBech32(hrp, data, variant)
}
