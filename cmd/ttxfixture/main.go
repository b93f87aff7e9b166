package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/teletext"
	"github.com/bodgit/teletext/mosaic"
	"github.com/bodgit/teletext/pagehash"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

const defaultDB = "teletext.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newGenerator(c *cli.Context) (*teletext.Generator, *teletext.PageDB, error) {
	db, err := teletext.NewPageDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return teletext.New(db, newLogger(c)), db, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeOutput(file string, b []byte) error {
	if file == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			return err
		}
		if isTerminal(os.Stdout) {
			_, err := os.Stdout.Write([]byte{'\n'})
			return err
		}
		return nil
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Close()
}

func main() {
	app := cli.NewApp()

	app.Name = "ttxfixture"
	app.Usage = "Teletext test fixture utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TELETEXT_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "rawfromhash",
			Usage:       "Decode a page hash to raw page bytes",
			Description: "HASH may be a full URL, only the part after \"#\" is used.",
			ArgsUsage:   "HASH",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of stdout",
				},
				&cli.BoolFlag{
					Name:  "bitstream",
					Usage: "use the bitstream decoder",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				decoder := teletext.DecoderHash
				if c.Bool("bitstream") {
					decoder = teletext.DecoderBitstream
				}

				_, raw, err := decoder.Decode(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeOutput(c.String("output"), raw); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "hashfromraw",
			Usage:       "Encode raw page bytes as a page hash",
			Description: "FILE must hold 24 or 25 rows of 40 bytes.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "code",
					Value: "0",
					Usage: "page `CODE` to prefix the hash with",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				token, err := pagehash.Encode(c.String("code"), b)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(token)

				return nil
			},
		},
		{
			Name:        "mosaic",
			Usage:       "Generate the mosaic character bitmaps",
			Description: "",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   mosaic.Filename,
					Usage:   "write to `FILE`",
				},
				&cli.StringFlag{
					Name:  "sheet",
					Usage: "also render every character to a PNG `FILE`",
				},
			},
			Action: func(c *cli.Context) error {
				b, err := mosaic.NewSet().MarshalBinary()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeOutput(c.String("output"), b); err != nil {
					return cli.NewExitError(err, 1)
				}

				if sheet := c.String("sheet"); sheet != "" {
					f, err := os.Create(sheet)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					defer f.Close()

					if err := png.Encode(f, mosaic.Sheet()); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Decode the fixtures listed in a YAML manifest",
			Description: "",
			ArgsUsage:   "MANIFEST",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, db, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := g.ImportFile(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Write stored fixtures and mosaic bitmaps to a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "compress",
					Usage: "compress pages with zstd",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, db, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := g.Export(c.Args().First(), c.Bool("compress")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
