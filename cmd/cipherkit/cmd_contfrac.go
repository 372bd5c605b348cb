package main

import (
	"fmt"
	"math/big"

	"cipherkit/pkg/contfrac"

	"github.com/urfave/cli/v2"
)

var contfracCommand = &cli.Command{
	Name:      "contfrac",
	Usage:     "continued-fraction codec",
	UsageText: "cipherkit contfrac encode <input> | cipherkit contfrac decode <num/denom>",
	Description: `Encodes a byte sequence as the rational number whose continued
fraction coefficients are the bytes plus two. Decode takes the rational
back apart; it fails on rationals that no byte sequence produces.`,
	Subcommands: []*cli.Command{
		{
			Name:      "encode",
			Usage:     "encode bytes to a rational",
			UsageText: "cipherkit contfrac encode <input>",
			Action:    contfracEncodeCmd,
		},
		{
			Name:      "decode",
			Usage:     "decode a rational back to bytes",
			UsageText: "cipherkit contfrac decode <num/denom>",
			Action:    contfracDecodeCmd,
		},
	},
}

func contfracEncodeCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Error: an input argument is required.", 1)
	}
	x, err := contfrac.Encode([]byte(c.Args().First()))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Print(x.RatString())
	return nil
}

func contfracDecodeCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Error: a num/denom argument is required.", 1)
	}
	x, ok := new(big.Rat).SetString(c.Args().First())
	if !ok {
		return cli.Exit(fmt.Sprintf("Error: %q is not a rational number.", c.Args().First()), 1)
	}
	plaintext, err := contfrac.Decode(x)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Print(string(plaintext))
	return nil
}
