package main

import (
	"cipherkit/pkg/quasidihedral"

	"github.com/urfave/cli/v2"
)

var groupCommand = &cli.Command{
	Name:        "group",
	Usage:       "quasidihedral-256 running-product stream cipher",
	UsageText:   "cipherkit group [options] <input>",
	Description: `Identifies bytes with elements of the quasidihedral group of order 256 and replaces each byte with the running product of the stream. Keyless; decode with --decode.`,
	Flags:       cipherFlags(),
	Action:      groupCmd,
}

func groupCmd(c *cli.Context) error {
	return runCipher(c, quasidihedral.NewCipher())
}
