package main

import (
	"fmt"

	"cipherkit/pkg/transform"

	"github.com/urfave/cli/v2"
)

var maskCommand = &cli.Command{
	Name:        "mask",
	Usage:       "repeating-key bit-gated XOR transform",
	UsageText:   "cipherkit mask [options] <input>",
	Description: `Walks the key bit by bit; positions whose key bit is set are XORed with the whole key byte, the rest pass through.`,
	Flags: cipherFlags(
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Transform key `KEY` (any bytes)",
		},
	),
	Action: maskCmd,
}

func maskCmd(c *cli.Context) error {
	key := c.String("key")
	if key == "" {
		key = mustConfig().MaskKey
	}

	cipher, err := transform.NewBitmaskXOR([]byte(key))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	return runCipher(c, cipher)
}
