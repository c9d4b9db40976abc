package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

// MainnetHRP is the human-readable prefix of mainnet segwit addresses.
// TestnetHRP is its testnet counterpart. Derivation takes the prefix as a
// parameter; classification treats it as advisory.
const (
	MainnetHRP = "bc"
	TestnetHRP = "tb"
)

// hash160 computes RIPEMD160(SHA256(data)), the standard Bitcoin
// public-key and script hash.
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// DeriveP2PKH derives the legacy pay-to-pubkey-hash address for the
// compressed form of the public key.
func DeriveP2PKH(pub *btcec.PublicKey) string {
	return EncodeBase58Check(versionP2PKH, hash160(pub.SerializeCompressed()))
}

// DeriveP2SHP2WPKH derives the nested-segwit address for the public key:
// a P2WPKH witness program wrapped in P2SH for pre-segwit compatibility.
func DeriveP2SHP2WPKH(pub *btcec.PublicKey) string {
	keyHash := hash160(pub.SerializeCompressed())

	// Redeem script: OP_0, push 20 bytes, key hash.
	script := make([]byte, 0, 2+hash160Len)
	script = append(script, 0x00, 0x14)
	script = append(script, keyHash...)

	return EncodeBase58Check(versionP2SH, hash160(script))
}

// DeriveP2WPKH derives the native segwit v0 address for the compressed
// form of the public key.
func DeriveP2WPKH(pub *btcec.PublicKey, hrp string) (string, error) {
	return EncodeSegwit(hrp, 0, hash160(pub.SerializeCompressed()))
}

// DeriveTaproot derives the segwit v1 key-path address for the public key,
// applying the BIP-341 TapTweak with an empty script tree.
func DeriveTaproot(pub *btcec.PublicKey, hrp string) (string, error) {
	outputKey, err := taprootOutputKey(pub)
	if err != nil {
		return "", err
	}
	return EncodeSegwit(hrp, 1, outputKey)
}

// taprootOutputKey computes the tweaked x-only output key for key-path
// spending: lift_x(P) + TaggedHash("TapTweak", x(P)) * G. The tweak is
// added to the even-Y lift of the x-only key, not to the point as given.
func taprootOutputKey(pub *btcec.PublicKey) ([]byte, error) {
	xOnly := schnorr.SerializePubKey(pub)
	lifted, err := schnorr.ParsePubKey(xOnly)
	if err != nil {
		return nil, err
	}
	tweak := taggedHash("TapTweak", xOnly)

	var tweakScalar btcec.ModNScalar
	tweakScalar.SetBytes(tweak)

	var tweakPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &tweakPoint)

	var point btcec.JacobianPoint
	lifted.AsJacobian(&point)
	btcec.AddNonConst(&point, &tweakPoint, &point)
	point.ToAffine()

	return schnorr.SerializePubKey(btcec.NewPublicKey(&point.X, &point.Y)), nil
}

// taggedHash computes the BIP-340 tagged hash
// SHA256(SHA256(tag) || SHA256(tag) || data).
func taggedHash(tag string, data []byte) *[32]byte {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return &out
}
