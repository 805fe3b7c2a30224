package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("b64 failed")
	}
}

// newApp builds the command tree. Each invocation gets its own
// environment so that apps can be run concurrently in tests.
func newApp() *cli.App {
	env := &environment{}
	return &cli.App{
		Name:    "b64",
		Usage:   "encode and decode Base64 with RFC 4648, RFC 3501, RFC 2152 or custom alphabets",
		Version: fmt.Sprintf("%s, commit %s, built at %s", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "standard",
				Aliases: []string{"s"},
				Usage:   "name of the Base64 standard (see the standards command)",
				EnvVars: []string{"B64_STANDARD"},
			},
			&cli.BoolFlag{
				Name:    "lenient",
				Aliases: []string{"l"},
				Usage:   "skip characters that are not part of the alphabet when decoding",
				EnvVars: []string{"B64_LENIENT"},
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "only accept canonical padding and zero trailing bits when decoding",
				EnvVars: []string{"B64_STRICT"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with custom standards",
				EnvVars: []string{"B64_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warning",
				Usage:   "one of trace, debug, info, warning, error",
				EnvVars: []string{"B64_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				EnvVars: []string{"B64_LOG_FORMAT"},
			},
		},
		Before: env.setup,
		Commands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "encodes the input to Base64",
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
					&cli.IntFlag{
						Name:    "wrap",
						Aliases: []string{"w"},
						Usage:   "insert a line break every `N` symbols (0 disables wrapping)",
					},
				},
				Action: env.encode,
			},
			{
				Name:  "decode",
				Usage: "decodes Base64 encoded input",
				Flags: []cli.Flag{
					inputFlag(),
					outputFlag(),
				},
				Action: env.decode,
			},
			{
				Name:   "standards",
				Usage:  "lists the known standards",
				Action: env.standards,
			},
		},
	}
}

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Value:   "-",
		Usage:   "input `FILE`, - for stdin",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "-",
		Usage:   "output `FILE`, - for stdout",
	}
}
