package main

import (
	"fmt"
	"os"

	"cipherkit/pkg/config"
	"cipherkit/pkg/hexenc"
	"cipherkit/pkg/log"
	"cipherkit/pkg/transform"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "cipherkit",
		Usage:   "keyed byte-stream transform toolkit",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Before: func(c *cli.Context) error {
			// The logs command opens the database itself, read-side.
			if c.Args().First() == "logs" {
				return nil
			}
			if err := log.Init(mustConfig().LogDB); err != nil {
				// Fall back to the console logger rather than refusing
				// to run a transform over a logging problem.
				log.SetStd()
				log.Warn().Err(err).Msg("log database unavailable, logging to stderr")
			}
			return nil
		},
		After: func(c *cli.Context) error {
			return log.Close()
		},
		Commands: []*cli.Command{
			maskCommand,
			strideCommand,
			flipskipCommand,
			groupCommand,
			contfracCommand,
			logsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func mustConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// readInput returns the buffer a cipher command operates on: the first
// positional argument, hex-decoded when asked for (decode runs always
// consume hex, since that is the only thing an encode run emits).
func readInput(c *cli.Context, hexIn bool) ([]byte, error) {
	if c.NArg() < 1 {
		return nil, cli.Exit("Error: an input argument is required.", 1)
	}
	arg := c.Args().First()
	if hexIn {
		b, err := hexenc.Decode(arg)
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return b, nil
	}
	return []byte(arg), nil
}

// buildPipeline wraps the cipher stage with a zstd stage when compression
// is requested. The compression stage sits before the cipher on encode,
// so the cipher walks the compressed bytes.
func buildPipeline(cipher transform.Transform, compress bool) (*transform.Pipeline, error) {
	stages := []transform.Transform{cipher}
	if compress {
		z, err := transform.NewZstdTransform(zstd.SpeedDefault)
		if err != nil {
			return nil, err
		}
		stages = []transform.Transform{z, cipher}
	}
	return transform.NewPipeline(stages...)
}

// runCipher executes the shared encode/decode flow of the cipher
// commands. Encode prints uppercase hex with no trailing newline, the
// output contract of the classic tools; decode prints the recovered
// bytes verbatim.
func runCipher(c *cli.Context, cipher transform.Transform) error {
	pipeline, err := buildPipeline(cipher, c.Bool("compress"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	decode := c.Bool("decode")
	input, err := readInput(c, decode)
	if err != nil {
		return err
	}

	if decode {
		out, err := pipeline.Decode(input)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		logRun(c, "decode", cipher, len(input), len(out))
		fmt.Print(string(out))
		return nil
	}

	out, err := pipeline.Encode(input)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	logRun(c, "encode", cipher, len(input), len(out))
	fmt.Print(hexenc.Encode(out))
	return nil
}

func logRun(c *cli.Context, direction string, cipher transform.Transform, inLen, outLen int) {
	log.Info().
		Str("command", c.Command.Name).
		Str("direction", direction).
		Str("cipher", fmt.Sprintf("%T", cipher)).
		Bool("compress", c.Bool("compress")).
		Int("input_len", inLen).
		Int("output_len", outLen).
		Msg("transform run")
}

// cipherFlags are shared by every cipher subcommand.
func cipherFlags(extra ...cli.Flag) []cli.Flag {
	common := []cli.Flag{
		&cli.BoolFlag{
			Name:    "decode",
			Aliases: []string{"d"},
			Usage:   "Run the reverse direction: input is hex, output is the recovered bytes",
		},
		&cli.BoolFlag{
			Name:  "compress",
			Usage: "Add a zstd compression stage around the cipher",
		},
	}
	return append(common, extra...)
}
