package address

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
)

func TestDecodeBech32(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantHRP  string
		wantLen  int // data groups including checksum
		wantErr  ErrorKind
	}{
		{
			name:    "minimal",
			input:   "a12uel5l",
			wantHRP: "a",
			wantLen: 6,
		},
		{
			name:    "minimal_upper",
			input:   "A12UEL5L",
			wantHRP: "a",
			wantLen: 6,
		},
		{
			name:    "p2wpkh_example",
			input:   "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			wantHRP: "bc",
			wantLen: 39,
		},
		{
			name:    "hrp_containing_separator",
			input:   "split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w",
			wantHRP: "split",
			wantLen: 54,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmpty,
		},
		{
			name:    "too_long",
			input:   "an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1569pvx",
			wantErr: ErrTooLong,
		},
		{
			name:    "no_separator",
			input:   "pzry9x0s0muk",
			wantErr: ErrNoSeparator,
		},
		{
			name:    "empty_hrp",
			input:   "1pzry9x0s0muk",
			wantErr: ErrNoSeparator,
		},
		{
			name:    "short_data_part",
			input:   "li1dgmt3",
			wantErr: ErrTooShort,
		},
		{
			name:    "invalid_data_char",
			input:   "x1b4n0q5v",
			wantErr: ErrInvalidCharacter,
		},
		{
			name:    "control_char_in_hrp",
			input:   "\x201nwldj5", // space is below the printable range
			wantErr: ErrInvalidCharacter,
		},
		{
			name:    "del_char_in_hrp",
			input:   "\x7f1axkwrx",
			wantErr: ErrInvalidCharacter,
		},
		{
			name:    "mixed_case",
			input:   "bc1QW508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			wantErr: ErrMixedCase,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hrp, data, err := DecodeBech32(tc.input)
			if tc.wantErr != "" {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error kind %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hrp != tc.wantHRP {
				t.Errorf("hrp %q, want %q", hrp, tc.wantHRP)
			}
			if len(data) != tc.wantLen {
				t.Errorf("data length %d, want %d", len(data), tc.wantLen)
			}
		})
	}
}

// TestVerifyChecksumVariants pins the two checksum constants to known-good
// strings of each variant.
func TestVerifyChecksumVariants(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		variant ChecksumVariant
	}{
		{"bech32_minimal", "a12uel5l", VariantBech32},
		{"bech32_segwit_v0", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", VariantBech32},
		{"bech32m_minimal", "a1lqfn3a", VariantBech32m},
		{"bech32m_taproot", "bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0", VariantBech32m},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hrp, data, err := DecodeBech32(tc.input)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if !VerifyChecksum(hrp, data, tc.variant) {
				t.Errorf("checksum does not verify as %v", tc.variant)
			}

			// Variant exclusivity: the same groups must fail under the
			// other constant.
			other := VariantBech32m
			if tc.variant == VariantBech32m {
				other = VariantBech32
			}
			if VerifyChecksum(hrp, data, other) {
				t.Errorf("checksum unexpectedly verifies as %v too", other)
			}
		})
	}
}

// TestChecksumSingleGroupSensitivity flips each data group of a valid
// string and confirms the checksum catches every change.
func TestChecksumSingleGroupSensitivity(t *testing.T) {
	hrp, data, err := DecodeBech32("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	for i := range data {
		mutated := append([]byte(nil), data...)
		mutated[i] = (mutated[i] + 1) % 32
		if VerifyChecksum(hrp, mutated, VariantBech32) {
			t.Errorf("checksum still verifies after changing group %d", i)
		}
	}
}

// TestEncodeBech32 exercises the encode direction and its validation.
func TestEncodeBech32(t *testing.T) {
	if _, err := EncodeBech32("", []byte{0}, VariantBech32); !errors.Is(err, ErrNoSeparator) {
		t.Errorf("empty hrp: want ErrNoSeparator, got %v", err)
	}
	if _, err := EncodeBech32("BC", []byte{0}, VariantBech32); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("upper-case hrp: want ErrInvalidCharacter, got %v", err)
	}
	if _, err := EncodeBech32("bc", []byte{32}, VariantBech32); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("oversized group: want ErrInvalidCharacter, got %v", err)
	}
	if _, err := EncodeBech32("bc", make([]byte, 90), VariantBech32); !errors.Is(err, ErrTooLong) {
		t.Errorf("overlong data: want ErrTooLong, got %v", err)
	}

	got, err := EncodeBech32("a", nil, VariantBech32)
	if err != nil {
		t.Fatalf("minimal encode failed: %v", err)
	}
	if got != "a12uel5l" {
		t.Errorf("minimal encode %q, want %q", got, "a12uel5l")
	}

	got, err = EncodeBech32("a", nil, VariantBech32m)
	if err != nil {
		t.Fatalf("minimal bech32m encode failed: %v", err)
	}
	if got != "a1lqfn3a" {
		t.Errorf("minimal bech32m encode %q, want %q", got, "a1lqfn3a")
	}
}

// TestBech32AgainstReference generates random checksummed strings with the
// local encoder and confirms the btcutil bech32 implementation agrees on
// prefix, data and variant.
func TestBech32AgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(50)+1)
		for j := range data {
			data[j] = byte(rng.Intn(32))
		}
		variant := VariantBech32
		if rng.Intn(2) == 1 {
			variant = VariantBech32m
		}

		encoded, err := EncodeBech32("tb", data, variant)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}

		refHRP, refData, refVersion, err := btcbech32.DecodeGeneric(encoded)
		if err != nil {
			t.Fatalf("reference decode of %q failed: %v", encoded, err)
		}
		if refHRP != "tb" {
			t.Fatalf("reference hrp %q", refHRP)
		}
		if !bytes.Equal(refData, data) {
			t.Fatalf("reference data %v, want %v", refData, data)
		}
		wantVersion := btcbech32.Version0
		if variant == VariantBech32m {
			wantVersion = btcbech32.VersionM
		}
		if refVersion != wantVersion {
			t.Fatalf("reference variant %v, want %v", refVersion, wantVersion)
		}

		hrp, ourData, err := DecodeBech32(encoded)
		if err != nil {
			t.Fatalf("decode of own encoding failed: %v", err)
		}
		if hrp != "tb" || !bytes.Equal(ourData[:len(ourData)-bech32ChecksumLen], data) {
			t.Fatalf("round trip mismatch for %q", encoded)
		}
		if !VerifyChecksum(hrp, ourData, variant) {
			t.Fatalf("own checksum does not verify for %q", encoded)
		}
	}
}

// FuzzDecodeBech32 checks that arbitrary input never panics and that any
// successful decode re-encodes (under whichever variant verifies) to the
// case-folded input.
func FuzzDecodeBech32(f *testing.F) {
	f.Add("a12uel5l")
	f.Add("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	f.Add("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4")
	f.Add("1pzry9x0s0muk")

	f.Fuzz(func(t *testing.T, s string) {
		hrp, data, err := DecodeBech32(s)
		if err != nil {
			return
		}
		payload := data[:len(data)-bech32ChecksumLen]
		for _, variant := range []ChecksumVariant{VariantBech32, VariantBech32m} {
			if !VerifyChecksum(hrp, data, variant) {
				continue
			}
			encoded, err := EncodeBech32(hrp, payload, variant)
			if err != nil {
				t.Fatalf("re-encode of %q failed: %v", s, err)
			}
			if encoded != strings.ToLower(s) {
				t.Fatalf("re-encode of %q produced %q", s, encoded)
			}
		}
	})
}
