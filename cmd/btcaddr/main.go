// btcaddr checks whether its arguments are valid Bitcoin addresses and
// reports the scheme each one belongs to.
//
// Exit codes: 0 when every address is valid, 1 when any is invalid,
// 2 on usage errors.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/runningHalAI/bitcoin-address-validator/internal/ui"
	"github.com/runningHalAI/bitcoin-address-validator/pkg/address"
)

type options struct {
	File    string `short:"f" long:"file" description:"Read addresses from a file, one per line ('#' starts a comment)"`
	Workers int    `short:"w" long:"workers" description:"Concurrent workers for batch validation (0 = one per CPU)"`
	Quiet   bool   `short:"q" long:"quiet" description:"Suppress per-address output, print only the summary"`
	NoColor bool   `long:"no-color" description:"Disable ANSI colors"`

	Args struct {
		Addresses []string `positional-arg-name:"ADDRESS"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [ADDRESS...]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if opts.NoColor {
		ui.DisableColor()
	}

	addrs := opts.Args.Addresses
	if opts.File != "" {
		fileAddrs, err := readAddressFile(opts.File)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		addrs = append(addrs, fileAddrs...)
	}
	if len(addrs) == 0 {
		fmt.Fprintln(os.Stderr, "no addresses given; pass them as arguments or with --file")
		return 2
	}

	results, err := address.ClassifyAll(context.Background(), addrs, opts.Workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	valid, invalid := 0, 0
	for i, d := range results {
		if d.Valid() {
			valid++
		} else {
			invalid++
		}
		if !opts.Quiet {
			ui.PrintResult(addrs[i], d)
		}
	}
	ui.PrintSummary(valid, invalid)

	if invalid > 0 {
		return 1
	}
	return 0
}

// readAddressFile loads one address per line, skipping blanks and '#'
// comments.
func readAddressFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address file: %w", err)
	}
	defer f.Close()

	var addrs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read address file: %w", err)
	}
	return addrs, nil
}
