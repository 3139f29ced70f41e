package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bodgit/fbpack"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) hclog.Logger {
	level := hclog.Info
	if c.Bool("verbose") {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   c.App.Name,
		Level:  level,
		Output: c.App.ErrWriter,
	})
}

func checkPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", fbpack.ErrMissingSourcePath, path)
		}
		return err
	}
	return nil
}

func newPacker(c *cli.Context) *fbpack.Packer {
	config := fbpack.DefaultConfig()
	config.SaveExtension = c.String("save-ext")
	config.Compress = !c.Bool("no-compress")
	if c.IsSet("delay") {
		config.PreviewDelay = c.Int("delay")
	}
	return fbpack.New(config, newLogger(c))
}

func pathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "path",
		Aliases:  []string{"p"},
		Required: true,
		Usage:    "directory holding the frames",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "fbpack"
	app.Usage = "Flipbook texture packer"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:    "save-ext",
			EnvVars: []string{"FBPACK_SAVE_EXT"},
			Value:   fbpack.DefaultConfig().SaveExtension,
			Usage:   "extension and format of the output artifact",
		},
		&cli.BoolFlag{
			Name:    "no-compress",
			EnvVars: []string{"FBPACK_NO_COMPRESS"},
			Usage:   "write uncompressed TIFF atlases",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "pack",
			Usage:       "Pack a frame sequence into a flipbook texture",
			Description: "Types are atlas, stagger and super. --rows and --cols are required for atlas.",
			Flags: []cli.Flag{
				pathFlag(),
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   "atlas",
					Usage:   "layout to generate: atlas, stagger or super",
				},
				&cli.IntFlag{
					Name:    "rows",
					Aliases: []string{"r"},
					Usage:   "number of rows in the atlas",
				},
				&cli.IntFlag{
					Name:    "cols",
					Aliases: []string{"c"},
					Usage:   "number of columns in the atlas",
				},
			},
			Action: func(c *cli.Context) error {
				if err := checkPath(c.String("path")); err != nil {
					return cli.Exit(err, 1)
				}

				layout, err := fbpack.ParseLayout(c.String("type"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				if layout == fbpack.Atlas && (!c.IsSet("rows") || !c.IsSet("cols")) {
					return cli.Exit("the number of rows and columns must be specified with --rows and --cols when generating an atlas", 1)
				}

				file, err := newPacker(c).Pack(layout, c.Int("rows"), c.Int("cols"), c.String("path"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Fprintln(c.App.Writer, file)

				return nil
			},
		},
		{
			Name:  "preview",
			Usage: "Write an animated GIF of a frame sequence",
			Flags: []cli.Flag{
				pathFlag(),
				&cli.IntFlag{
					Name:  "delay",
					Value: fbpack.DefaultConfig().PreviewDelay,
					Usage: "time each frame is shown in 100ths of a second",
				},
			},
			Action: func(c *cli.Context) error {
				if err := checkPath(c.String("path")); err != nil {
					return cli.Exit(err, 1)
				}

				file, err := newPacker(c).Preview(c.String("path"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Fprintln(c.App.Writer, file)

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
