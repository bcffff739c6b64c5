// Command optree-demo is a small file-inspection tool built on optree.
// It shows the declaration style: a command tree with typed option
// storage, flag cells, list options, environment fallback and a YAML
// defaults file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/optree/optree"
	"github.com/optree/optree/completion"
	"github.com/optree/optree/types"
	"github.com/optree/optree/util"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "optree-demo",
})

var (
	verbosity int
	quiet     int
	colorMode = "auto"
	follow    int
	since     time.Time
	values    []float64
	nvalues   int
)

func main() {
	root := optree.Command{
		Name:  "optree-demo",
		About: "Inspect files and sum numbers",
		Description: "optree-demo inspects files and sums numbers. It exists to show " +
			"how a command tree, typed options and operands fit together.",
		Options: []optree.Option{
			{Short: 'v', Long: "verbose", Flag: &verbosity, FlagAction: optree.FlagIncrement, Group: 1,
				Description: "Increase log verbosity, repeatable"},
			{Short: 'q', Long: "quiet", Flag: &quiet, FlagAction: optree.FlagSetTrue, Group: 1,
				Description: "Log errors only"},
			{Long: "color", ArgName: "[WHEN]", Kind: types.KindString, Store: &colorMode, Default: "always",
				Description: "Colorize output: auto, always or never"},
		},
		Subcommands: []optree.Command{
			{
				Name:     "info",
				About:    "Show file details",
				Operands: "FILE...",
				Options: []optree.Option{
					{Short: 's', Long: "since", ArgName: "DATE", Kind: types.KindTime, Store: &since,
						Description: "Only list files modified at or after DATE"},
					{Short: 'L', Long: "follow", Flag: &follow,
						Description: "Follow symbolic links"},
				},
				Callback: runInfo,
			},
			{
				Name:     "sum",
				About:    "Add numbers together",
				Operands: "[NUM...]",
				Options: []optree.Option{
					{Long: "values", ArgName: "LIST", Kind: types.KindFloat64, ListDelims: ",",
						Store: &values, StoreCount: &nvalues,
						Description: "Comma-separated numbers added to the total"},
				},
				Callback: runSum,
			},
			{
				Name:     "completion",
				About:    "Print a shell completion script",
				Operands: "[SHELL]",
				Callback: runCompletion,
			},
			optree.HelpCommand(),
		},
		Callback: func(p *optree.Parser, cmd *optree.Command) error {
			p.PrintHelp(p.Stdout(), cmd)
			return nil
		},
	}

	p, err := optree.NewParser(&root, optree.WithEnvPrefix("OPTREE_DEMO"))
	if err != nil {
		logger.Fatal("bad command tree", "err", err)
	}
	p.EnableHelp('h', "help")

	defaults, err := loadDefaults()
	if err != nil {
		logger.Fatal("defaults file", "err", err)
	}

	if err := p.ParseWithDefaults(os.Args, defaults); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
		p.PrintUsage(os.Stderr, p.ActiveCommand())
		os.Exit(1)
	}
}

// loadDefaults reads the YAML mapping named by OPTREE_DEMO_CONFIG. Keys
// are long option names of the root command, values their defaults.
func loadDefaults() (map[string]string, error) {
	path := os.Getenv("OPTREE_DEMO_CONFIG")
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	defaults := map[string]string{}
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defaults, nil
}

// setup applies the root options once a command callback runs. All
// option values are in place by then.
func setup() {
	switch {
	case quiet != 0:
		logger.SetLevel(log.ErrorLevel)
	case verbosity >= 2:
		logger.SetLevel(log.DebugLevel)
	case verbosity == 1:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func runInfo(p *optree.Parser, cmd *optree.Command) error {
	setup()
	files := p.Operands()
	if len(files) == 0 {
		return fmt.Errorf("no files given")
	}
	name := color.New(color.FgCyan).SprintFunc()
	for _, path := range files {
		fi, err := stat(path)
		if err != nil {
			logger.Error("cannot stat", "path", path, "err", err)
			continue
		}
		if !since.IsZero() && fi.ModTime().Before(since) {
			logger.Debug("too old", "path", path, "modified", fi.ModTime())
			continue
		}
		fmt.Printf("%s  %10s  %s\n", fi.ModTime().Format(time.RFC3339), formatSize(fi.Size()), name(path))
	}
	return nil
}

func stat(path string) (os.FileInfo, error) {
	if follow != 0 {
		return os.Stat(path)
	}
	return os.Lstat(path)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func runSum(p *optree.Parser, cmd *optree.Command) error {
	setup()
	total := 0.0
	for _, v := range values {
		total += v
	}
	if nvalues > 0 {
		logger.Debug("from --values", "count", nvalues)
	}
	for {
		tok, ok := p.Shift()
		if !ok {
			break
		}
		v, err := util.Convert(tok, types.KindFloat64)
		if err != nil {
			return fmt.Errorf("not a number: %q", tok)
		}
		total += v.Float()
	}
	color.New(color.FgGreen, color.Bold).Printf("%g\n", total)
	return nil
}

func runCompletion(p *optree.Parser, cmd *optree.Command) error {
	setup()
	shell, ok := p.Shift()
	if !ok {
		shell = "bash"
	}
	if !slices.Contains(completion.Shells(), shell) {
		return fmt.Errorf("unknown shell %q, expected one of %s",
			shell, strings.Join(completion.Shells(), ", "))
	}
	fmt.Print(p.GenerateCompletion(shell))
	return nil
}
