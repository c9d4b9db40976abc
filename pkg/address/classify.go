package address

import "strings"

// AddressType identifies the scheme that produced a valid address.
type AddressType int

const (
	TypeInvalid  AddressType = iota // not a valid address
	TypeP2PKH                       // legacy pay-to-pubkey-hash (1...)
	TypeP2SH                        // pay-to-script-hash (3...)
	TypeSegwitV0                    // native segwit v0, P2WPKH or P2WSH (bc1q...)
	TypeTaproot                     // segwit v1, P2TR (bc1p...)
)

// String returns the address type name.
func (t AddressType) String() string {
	switch t {
	case TypeP2PKH:
		return "P2PKH"
	case TypeP2SH:
		return "P2SH"
	case TypeSegwitV0:
		return "SegwitV0"
	case TypeTaproot:
		return "Taproot"
	default:
		return "Invalid"
	}
}

// Recognized mainnet Base58Check version bytes.
const (
	versionP2PKH = 0x00
	versionP2SH  = 0x05
)

// hash160Len is the payload length of standard P2PKH and P2SH addresses.
const hash160Len = 20

// Decoded is the immutable outcome of classifying one address string.
// Type is TypeInvalid if and only if Err is non-nil. For Base58Check
// addresses Version holds the version byte; for segwit addresses it holds
// the witness version and HRP the human-readable prefix, case-folded.
// Program is a fresh copy owned by the Decoded value.
type Decoded struct {
	Type    AddressType
	Version byte
	Program []byte
	HRP     string
	Err     *Error
}

// Valid reports whether the address decoded to a recognized scheme.
func (d Decoded) Valid() bool {
	return d.Type != TypeInvalid
}

// Reason returns the machine-readable rejection kind, or an empty kind for
// a valid address.
func (d Decoded) Reason() ErrorKind {
	if d.Err == nil {
		return ""
	}
	return d.Err.Kind()
}

func invalid(err Error) Decoded {
	return Decoded{Type: TypeInvalid, Err: &err}
}

func invalidf(kind ErrorKind, format string, args ...interface{}) Decoded {
	return invalid(decodeErrorf(kind, format, args...))
}

// Valid reports whether s is a valid Bitcoin address of any supported
// scheme.
func Valid(s string) bool {
	return Classify(s).Valid()
}

// Classify determines which address scheme produced s, or why none did.
// It never panics and never returns an ambiguous result: the outcome is
// either a recognized type with its decoded payload, or TypeInvalid with
// a single reason collapsed from the underlying decode attempts.
//
// Base58Check is attempted first; a string that checksums as Base58Check
// is definitively legacy-form and the bech32 path is not consulted. The
// bech32 checksum variant is forced by the witness version per BIP-350:
// version 0 must verify as Bech32 and versions 1+ as Bech32m, so data
// checksummed under the wrong variant is a checksum failure, never a
// fallback to the other variant.
func Classify(s string) Decoded {
	if s == "" {
		return invalid(decodeError(ErrEmpty, "empty address string"))
	}

	version, payload, b58Err := DecodeBase58Check(s)
	if b58Err == nil {
		switch version {
		case versionP2PKH, versionP2SH:
			if len(payload) != hash160Len {
				return invalidf(ErrInvalidProgramLength,
					"base58check payload is %d bytes, want %d",
					len(payload), hash160Len)
			}
			typ := TypeP2PKH
			if version == versionP2SH {
				typ = TypeP2SH
			}
			return Decoded{
				Type:    typ,
				Version: version,
				Program: append([]byte(nil), payload...),
			}
		default:
			// Checksum-valid base58 with an unrecognized version byte is
			// structurally legacy-form; reporting the version is more
			// useful than falling through to a doomed bech32 attempt.
			return invalidf(ErrUnknownVersion,
				"base58check version byte 0x%02x is not a recognized mainnet scheme",
				version)
		}
	}

	hrp, data, bechErr := DecodeBech32(s)
	if bechErr == nil {
		return classifySegwit(hrp, data)
	}

	return collapse(b58Err, bechErr, s)
}

// classifySegwit takes a successfully decoded bech32 prefix and data
// groups (checksum still attached) and finishes the segwit path.
func classifySegwit(hrp string, data []byte) Decoded {
	if len(data) < bech32ChecksumLen+1 {
		return invalid(decodeError(ErrTooShort,
			"bech32 data holds a checksum but no witness version"))
	}

	// The first group picks the checksum variant; only then can the
	// checksum be verified.
	witnessVersion := data[0]
	if witnessVersion > maxWitnessVersion {
		return invalidf(ErrInvalidWitnessVersion,
			"witness version %d exceeds maximum %d",
			witnessVersion, maxWitnessVersion)
	}
	variant := VariantBech32
	if witnessVersion >= 1 {
		variant = VariantBech32m
	}
	if !VerifyChecksum(hrp, data, variant) {
		return invalidf(ErrChecksumMismatch,
			"%s checksum does not verify for witness version %d",
			variant, witnessVersion)
	}

	version, program, err := extractSegwit(data[:len(data)-bech32ChecksumLen])
	if err != nil {
		return invalid(err.(Error))
	}

	decoded := Decoded{Version: version, Program: program, HRP: hrp}
	switch version {
	case 0:
		decoded.Type = TypeSegwitV0
	case 1:
		decoded.Type = TypeTaproot
	default:
		// Versions 2-16 are structurally sound but have no named type
		// yet; refusing is safer than guessing a future assignment.
		return invalidf(ErrUnsupportedWitnessVersion,
			"witness version %d has no assigned address type", version)
	}
	return decoded
}

// collapse picks the single reported reason when both decode paths fail.
// The more specific failure wins: a mixed-case string that is otherwise
// well-formed bech32 reports the case error, a string drawn entirely from
// the base58 alphabet reports its base58 failure, and anything else is
// simply not recognized.
func collapse(b58Err, bechErr error, s string) Decoded {
	if errKind(bechErr) == ErrMixedCase {
		if _, _, err := DecodeBech32(strings.ToLower(s)); err == nil {
			return invalid(bechErr.(Error))
		}
	}
	switch errKind(b58Err) {
	case ErrChecksumMismatch, ErrTooShort:
		return invalid(b58Err.(Error))
	}
	return invalid(decodeError(ErrNotRecognized,
		"not a recognized address encoding"))
}
