package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rubiojr/pyunparse/ast"
	"github.com/rubiojr/pyunparse/parser"
	"github.com/rubiojr/pyunparse/unparse"
)

// Execute runs the pyunparse CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "pyunparse",
		Usage:                  "Reconstruct Python source from ast.dump output",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `pyunparse tree.dump` as shorthand for `pyunparse emit tree.dump`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				arg := cmd.Args().First()
				if arg == "-" || strings.HasSuffix(arg, ".dump") || isDumpFile(arg) {
					return emit(arg, "", unparse.New())
				}
			}
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "emit",
				Usage:     "Output the reconstructed Python source",
				ArgsUsage: "<file.dump>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "indent",
						Aliases: []string{"i"},
						Usage:   "Indentation width in spaces",
						Value:   unparse.DefaultIndentation,
					},
					&cli.IntFlag{
						Name:    "line-length",
						Aliases: []string{"l"},
						Usage:   "Soft maximum line length",
						Value:   unparse.DefaultLineLength,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to file instead of stdout",
					},
				},
				Action: emitAction,
			},
			{
				Name:      "tree",
				Usage:     "Print the parsed AST",
				ArgsUsage: "<file.dump>",
				Action:    treeAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel(), err)
		os.Exit(1)
	}
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: pyunparse emit [-i width] [-l length] [-o output] <file.dump>")
	}
	u := &unparse.Unparser{
		Indentation: int(cmd.Int("indent")),
		LineLength:  int(cmd.Int("line-length")),
	}
	return emit(cmd.Args().First(), cmd.String("output"), u)
}

func emit(path, output string, u *unparse.Unparser) error {
	node, err := parseDump(path)
	if err != nil {
		return err
	}
	src, err := u.Unparse(node)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	if output != "" {
		return os.WriteFile(output, []byte(src), 0644)
	}
	fmt.Print(src)
	return nil
}

func treeAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: pyunparse tree <file.dump>")
	}
	node, err := parseDump(cmd.Args().First())
	if err != nil {
		return err
	}
	conf := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	conf.Fdump(os.Stdout, node)
	return nil
}

// parseDump reads a dump from the given path, or from stdin when path
// is "-".
func parseDump(path string) (ast.Node, error) {
	var src []byte
	var err error
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	p := &parser.Parser{}
	return p.Parse(displayName(path), src)
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

// isDumpFile checks if a file exists and starts like an ast.dump of a
// module root.
func isDumpFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 64)
	n, _ := f.Read(buf)
	line := strings.TrimSpace(string(buf[:n]))
	return strings.HasPrefix(line, "Module(") ||
		strings.HasPrefix(line, "Interactive(") ||
		strings.HasPrefix(line, "Expression(")
}

// errorLabel colors the error prefix when stderr is a terminal.
func errorLabel() string {
	if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	return color.New(color.FgRed, color.Bold).Sprint("error:")
}
