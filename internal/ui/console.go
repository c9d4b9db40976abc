// Package ui renders validation results on an ANSI terminal.
package ui

import (
	"encoding/hex"
	"fmt"

	"github.com/runningHalAI/bitcoin-address-validator/pkg/address"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

var colorEnabled = true

// DisableColor turns off ANSI escapes, for pipes and dumb terminals.
func DisableColor() {
	colorEnabled = false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// networkHint maps a decoded address to a network label. For segwit
// addresses the prefix is advisory, so this is a hint, not a verdict.
func networkHint(d address.Decoded) string {
	switch {
	case d.Type == address.TypeP2PKH || d.Type == address.TypeP2SH:
		return "mainnet"
	case d.HRP == address.MainnetHRP:
		return "mainnet"
	case d.HRP == address.TestnetHRP:
		return "testnet"
	default:
		return fmt.Sprintf("unknown (prefix %q)", d.HRP)
	}
}

// PrintResult renders one classification outcome.
func PrintResult(addr string, d address.Decoded) {
	if !d.Valid() {
		fmt.Printf("  %s %s\n", paint(colorRed+colorBold, "✗"), addr)
		fmt.Printf("      %s %s\n", paint(colorRed, string(d.Reason())),
			paint(colorDim, d.Err.Description))
		return
	}

	fmt.Printf("  %s %s\n", paint(colorGreen+colorBold, "✓"), addr)
	fmt.Printf("      type    %s\n", paint(colorCyan+colorBold, d.Type.String()))
	switch d.Type {
	case address.TypeP2PKH, address.TypeP2SH:
		fmt.Printf("      version 0x%02x\n", d.Version)
		fmt.Printf("      hash160 %s\n", paint(colorDim, hex.EncodeToString(d.Program)))
	default:
		fmt.Printf("      witness version %d, %d-byte program\n", d.Version, len(d.Program))
		fmt.Printf("      program %s\n", paint(colorDim, hex.EncodeToString(d.Program)))
	}
	fmt.Printf("      network %s\n", paint(colorYellow, networkHint(d)))
}

// PrintSummary renders the batch tally.
func PrintSummary(valid, invalid int) {
	fmt.Printf("\n  %s valid, %s invalid\n",
		paint(colorGreen+colorBold, fmt.Sprintf("%d", valid)),
		paint(colorRed+colorBold, fmt.Sprintf("%d", invalid)))
}
