package main

import (
	"errors"
	"fmt"
	"os"

	"cipherkit/pkg/log"

	"github.com/urfave/cli/v2"
)

var logsCommand = &cli.Command{
	Name:        "logs",
	Usage:       "retrieve JSON log entries from the log database",
	UsageText:   "cipherkit logs [options]",
	Description: `Reads back log lines stored in the SQLite log database under the cipherkit app directory.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dbfile",
			Aliases: []string{"f"},
			Usage:   "Log database file name `FILE` (defaults to the configured log_db)",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of entries to retrieve `NUMBER`",
			Value:   log.DefaultLimit,
		},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	dbFile := c.String("dbfile")
	if dbFile == "" {
		dbFile = mustConfig().LogDB
	}

	if err := log.Init(dbFile); err != nil {
		return cli.Exit(fmt.Sprintf("Error initializing logger (required for DB access): %v", err), 1)
	}
	defer log.Close()

	count := c.Int("count")
	if count <= 0 {
		return cli.Exit("Error: --count (-n) must be a positive number.", 1)
	}

	results, err := log.GetLastNLogs(count)
	if err != nil {
		if errors.Is(err, log.ErrNotInitialized) {
			return cli.Exit("Internal Error: logger DB handle became unavailable.", 2)
		}
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", err), 1)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No log entries found.")
		return nil
	}
	for _, entry := range results {
		fmt.Println(entry.LogData)
	}
	return nil
}
