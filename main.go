package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawast/ast"
	"github.com/pontaoski/tawast/loader"
	"github.com/pontaoski/tawast/lower"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawast", "main")

func loadTrees(c *cli.Context, idx int) ([]ast.Ast, error) {
	file := c.Args().Get(idx)
	if file == "" {
		return nil, cli.Exit("no tree file provided", 2)
	}
	return loader.Load(file)
}

func renderAll(trees []ast.Ast) string {
	var b strings.Builder
	for _, tree := range trees {
		b.WriteString(ast.Render(tree))
	}
	return b.String()
}

func equalAll(a, b []ast.Ast) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ast.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func setupLogging(c *cli.Context) error {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(c.App.ErrWriter, false))

	level, err := capnslog.ParseLevel(strings.ToUpper(c.String("log-level")))
	if err != nil {
		return cli.Exit(fmt.Sprintf("bad log level %q", c.String("log-level")), 2)
	}
	capnslog.SetGlobalLogLevel(level)
	return nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "tawast",
		Usage:     "inspect, compare and lower tawa syntax trees",
		Writer:    stdout,
		ErrWriter: stderr,
		ExitErrHandler: func(c *cli.Context, err error) {
			// main reports errors and picks the exit code
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "module-info",
				Value: ModuleInfoFile,
				Usage: "path of the module information file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "notice",
				Usage: "one of critical, error, warning, notice, info, debug, trace",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write module information for a package",
				ArgsUsage: "<package>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "target",
						Usage: "LLVM target triple for build",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 2)
					}
					return writeModuleInfo(c.String("module-info"), moduleInfo{
						Package: name,
						Target:  c.String("target"),
					})
				},
			},
			{
				Name:      "render",
				Usage:     "print the canonical form of every tree in a file",
				ArgsUsage: "<file.yaml>",
				Action: func(c *cli.Context) error {
					trees, err := loadTrees(c, 0)
					if err != nil {
						return err
					}
					fmt.Fprint(c.App.Writer, renderAll(trees))
					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "pretty print the trees in a file as Go values",
				ArgsUsage: "<file.yaml>",
				Action: func(c *cli.Context) error {
					trees, err := loadTrees(c, 0)
					if err != nil {
						return err
					}
					repr.New(c.App.Writer).Println(trees)
					return nil
				},
			},
			{
				Name:      "diff",
				Usage:     "compare two tree files structurally",
				ArgsUsage: "<a.yaml> <b.yaml>",
				Action: func(c *cli.Context) error {
					a, err := loadTrees(c, 0)
					if err != nil {
						return err
					}
					b, err := loadTrees(c, 1)
					if err != nil {
						return err
					}
					if equalAll(a, b) {
						plog.Infof("%s and %s are identical", c.Args().Get(0), c.Args().Get(1))
						return nil
					}

					dmp := diffmatchpatch.New()
					diffs := dmp.DiffMain(renderAll(a), renderAll(b), false)
					fmt.Fprintln(c.App.Writer, dmp.DiffPrettyText(diffs))
					return cli.Exit("trees differ", 1)
				},
			},
			{
				Name:      "build",
				Usage:     "lower the functions in a file to LLVM IR",
				ArgsUsage: "<file.yaml>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					info, err := readModuleInfo(c.String("module-info"))
					if err != nil {
						return err
					}

					trees, err := loadTrees(c, 0)
					if err != nil {
						return err
					}

					module, err := lower.Module(trees, lower.Settings{
						PackageName: info.Package,
						Target:      info.Target,
					})
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						fmt.Fprint(c.App.Writer, module.String())
						return nil
					}

					out := c.String("output")
					if out == "" {
						out = info.Package
					}
					if !strings.HasSuffix(out, ".ll") {
						out += ".ll"
					}

					plog.Infof("writing %s", out)
					return tracerr.Wrap(ioutil.WriteFile(out, []byte(module.String()), 0644))
				},
			},
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if exit, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exit.ExitCode())
		}
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}
