package main

import (
	"fmt"

	"cipherkit/pkg/transform"

	"github.com/urfave/cli/v2"
)

var strideCommand = &cli.Command{
	Name:        "stride",
	Usage:       "periodic increment/decrement transform",
	UsageText:   "cipherkit stride [options] <input>",
	Description: `Within each window of p+q positions, the first p bytes are incremented and the remaining q bytes are decremented, wrapping at the byte boundary.`,
	Flags: cipherFlags(
		&cli.IntFlag{
			Name:    "up",
			Aliases: []string{"p"},
			Usage:   "Increment run length `P`",
		},
		&cli.IntFlag{
			Name:    "down",
			Aliases: []string{"q"},
			Usage:   "Decrement run length `Q`",
		},
	),
	Action: strideCmd,
}

func strideCmd(c *cli.Context) error {
	cfg := mustConfig()
	p, q := cfg.StrideUp, cfg.StrideDown
	if c.IsSet("up") {
		p = c.Int("up")
	}
	if c.IsSet("down") {
		q = c.Int("down")
	}

	cipher, err := transform.NewStrideStep(p, q)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	return runCipher(c, cipher)
}
