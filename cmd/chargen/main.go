package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bodgit/chargen"
	"github.com/bodgit/chargen/codec"
	"github.com/bodgit/chargen/export"
	"github.com/bodgit/chargen/share"
	"github.com/bodgit/chargen/sheet"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

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

func config(c *cli.Context) (chargen.Config, error) {
	padding, err := chargen.ParsePadding(c.String("padding"))
	if err != nil {
		return chargen.Config{}, err
	}

	bitOrder, err := chargen.ParseBitOrder(c.String("bit-order"))
	if err != nil {
		return chargen.Config{}, err
	}

	cfg := chargen.Config{
		Width:    c.Int("width"),
		Height:   c.Int("height"),
		Padding:  padding,
		BitOrder: bitOrder,
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return chargen.Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

func output(c *cli.Context) (io.WriteCloser, error) {
	if file := c.String("output"); file != "" {
		return os.Create(file)
	}
	return os.Stdout, nil
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write to `FILE` instead of standard output",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "chargen"
	app.Usage = "character generator ROM utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			EnvVars: []string{"CHARGEN_WIDTH"},
			Value:   8,
			Usage:   "character width in pixels",
		},
		&cli.IntFlag{
			Name:    "height",
			EnvVars: []string{"CHARGEN_HEIGHT"},
			Value:   8,
			Usage:   "character height in pixels",
		},
		&cli.StringFlag{
			Name:    "padding",
			EnvVars: []string{"CHARGEN_PADDING"},
			Value:   "right",
			Usage:   "row padding direction, \"right\" or \"left\"",
		},
		&cli.StringFlag{
			Name:    "bit-order",
			EnvVars: []string{"CHARGEN_BIT_ORDER"},
			Value:   "msb",
			Usage:   "bit order within each byte, \"msb\" or \"lsb\"",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "export",
			Usage:     "Export a ROM dump as C or assembly source",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "c",
					Usage: "output format, \"c\" or \"asm\"",
				},
				&cli.StringFlag{
					Name:  "name",
					Value: "font",
					Usage: "array name or label to emit",
				},
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := config(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				b, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				cs := codec.Decode(b, cfg)
				newLogger(c).Printf("read %d characters from %d bytes\n", len(cs), len(b))

				w, err := output(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer w.Close()

				switch c.String("format") {
				case "c":
					err = export.CHeader(w, c.String("name"), cs, cfg)
				case "asm":
					err = export.Assembly(w, c.String("name"), cs, cfg)
				default:
					err = fmt.Errorf("unknown format %q", c.String("format"))
				}
				if err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "convert",
			Usage:     "Convert a font sheet image into a ROM dump",
			ArgsUsage: "IMAGE",
			Flags:     []cli.Flag{outputFlag()},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := config(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				cs, err := sheet.Decode(m, cfg.Width, cfg.Height)
				if err != nil {
					return cli.Exit(err, 1)
				}
				newLogger(c).Printf("read %d characters\n", len(cs))

				w, err := output(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer w.Close()

				if _, err := w.Write(codec.Encode(cs, cfg)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Render a ROM dump as a PNG font sheet",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "per-row",
					Value: 16,
					Usage: "characters per sheet row",
				},
				outputFlag(),
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := config(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				b, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				w, err := output(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer w.Close()

				if err := png.Encode(w, sheet.Encode(codec.Decode(b, cfg), c.Int("per-row"))); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "share",
			Usage: "Create and read shareable character set tokens",
			Subcommands: []*cli.Command{
				{
					Name:      "encode",
					Usage:     "Encode a ROM dump into a share token",
					ArgsUsage: "FILE",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "name",
							Usage: "character set name",
						},
						&cli.StringFlag{
							Name:  "description",
							Usage: "character set description",
						},
					},
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						cfg, err := config(c)
						if err != nil {
							return cli.Exit(err, 1)
						}

						b, err := os.ReadFile(c.Args().First())
						if err != nil {
							return cli.Exit(err, 1)
						}

						cs := codec.Decode(b, cfg)
						newLogger(c).Printf("estimated token length %d for %d characters\n", share.EstimateLength(len(cs), cfg.Width, cfg.Height), len(cs))

						token, err := share.Encode(c.String("name"), c.String("description"), cs, cfg)
						if err != nil {
							return cli.Exit(err, 1)
						}

						fmt.Println(token)
						return nil
					},
				},
				{
					Name:      "decode",
					Usage:     "Decode a share token back into a ROM dump",
					ArgsUsage: "TOKEN",
					Flags:     []cli.Flag{outputFlag()},
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						d, err := share.Decode(c.Args().First())
						if err != nil {
							return cli.Exit(err, 1)
						}

						logger := newLogger(c)
						logger.Printf("name %q, description %q\n", d.Name, d.Description)
						logger.Printf("%d characters, %dx%d, %s padding, %s first\n", len(d.Characters), d.Config.Width, d.Config.Height, d.Config.Padding, d.Config.BitOrder)

						w, err := output(c)
						if err != nil {
							return cli.Exit(err, 1)
						}
						defer w.Close()

						if _, err := w.Write(codec.Encode(d.Characters, d.Config)); err != nil {
							return cli.Exit(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
