package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"acstools/internal/logging"
	"acstools/internal/model"
	"acstools/internal/skeleton"
	"acstools/internal/tui"
	"acstools/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: skeleton [options] [maxDepth]\n\n")
		fmt.Fprintf(os.Stderr, "skeleton reads relative file paths, one per line, from stdin and prints\n")
		fmt.Fprintf(os.Stderr, "them as a directory tree. Directories come before files at every level.\n")
		fmt.Fprintf(os.Stderr, "maxDepth defaults to %d; a non-numeric value is ignored.\n\n", skeleton.DefaultMaxDepth)
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  git ls-files | skeleton 4                  # Four levels deep\n")
		fmt.Fprintf(os.Stderr, "  git ls-files -z --cached --others --exclude-standard | skeleton -z\n")
		fmt.Fprintf(os.Stderr, "  skeleton --git --dir ../web -F              # Let skeleton run git itself\n")
		fmt.Fprintf(os.Stderr, "  skeleton --git --format json                # Tree as JSON\n")
		fmt.Fprintf(os.Stderr, "  skeleton --git --tui                        # Browse interactively\n")
	}

	nulFlag := pflag.BoolP("null", "z", false, "Input paths are NUL-separated instead of newline-separated")
	gitFlag := pflag.Bool("git", false, "Read paths from 'git ls-files' instead of stdin")
	dirFlag := pflag.String("dir", ".", "Working copy to list with --git")
	classifyFlag := pflag.BoolP("classify", "F", false, "Append / to directory names")
	formatFlag := pflag.StringP("format", "f", string(skeleton.FormatText), "Output format: text, json, yaml or toml")
	tuiFlag := pflag.Bool("tui", false, "Browse the tree interactively")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log debug details to stderr")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	// Errors exit through ExitOnError like pflag.Parse does.
	_ = pflag.CommandLine.Parse(depthAsPositional(os.Args[1:]))

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("skeleton version %s\n", model.Version)
		return
	}

	if *updateFlag {
		update.Check(os.Stdout, model.Version, true)
		return
	}

	logging.Setup(*verboseFlag)

	format, err := skeleton.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts := skeleton.Options{
		MaxDepth: parseDepth(pflag.Args()),
		Classify: *classifyFlag,
	}

	root, err := loadTree(*gitFlag, *dirFlag, *nulFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading paths: %v\n", err)
		os.Exit(1)
	}

	if *tuiFlag {
		runTuiMode(root, opts)
		return
	}

	if err := skeleton.Encode(os.Stdout, root, opts, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tree: %v\n", err)
		os.Exit(1)
	}
}

// parseDepth reads the optional positional depth. Anything that is not an
// integer leaves the default in place.
func parseDepth(args []string) int {
	if len(args) == 0 {
		return skeleton.DefaultMaxDepth
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		slog.Debug("ignoring non-numeric depth", "arg", args[0])
		return skeleton.DefaultMaxDepth
	}
	return depth
}

// depthAsPositional moves arguments that are negative integers behind a "--"
// so that "-2" is read as a depth rather than a shorthand flag.
func depthAsPositional(args []string) []string {
	var flags, positional []string
	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if n, err := strconv.Atoi(arg); err == nil && n < 0 {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func loadTree(fromGit bool, dir string, nul bool) (*model.TreeNode, error) {
	if fromGit {
		return skeleton.LoadGit(context.Background(), dir)
	}
	return skeleton.Load(os.Stdin, nul)
}

func runTuiMode(root *model.TreeNode, opts skeleton.Options) {
	if opts.MaxDepth < 1 {
		opts.MaxDepth = 1
	}
	m := tui.InitialModel(root, opts)
	// stdin carries the path listing, so keys come from the terminal
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInputTTY())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
