package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mchmarny/navaug/pkg/i18n"
	"github.com/mchmarny/navaug/pkg/logger"
	"github.com/mchmarny/navaug/pkg/metric"
	"github.com/mchmarny/navaug/pkg/navigation"
)

var (
	version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"   // Set at build time via -ldflags "-X main.commit=commit"
)

// options holds the flags shared by all commands.
type options struct {
	dir          string
	linksPath    string
	diagnostics  bool
	logLevel     string
	logFormat    string
	translations string
	lang         string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "navaug",
		Short:        "Inject custom links from LINKS.csv into a navigation menu",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.dir, "dir", defaultDir(), "Component install directory; LINKS.csv is read from two levels above it")
	pf.StringVar(&opts.linksPath, "links", "", "Explicit path to the links file (overrides --dir)")
	pf.BoolVar(&opts.diagnostics, "diagnostics", true, "Log rejected rows at debug level")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
	pf.StringVar(&opts.logFormat, "log-format", logger.FormatJSON, "Log format: json or text")
	pf.StringVar(&opts.translations, "translations", "", "Path to a yaml translation catalog for link names")
	pf.StringVar(&opts.lang, "lang", "en", "Language used from the translation catalog")

	root.AddCommand(newServeCmd(opts), newCheckCmd(opts))

	return root
}

// defaultDir is the directory holding the running binary.
func defaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// augmenter builds the augmenter described by opts. reg may be nil.
func (o *options) augmenter(reg prometheus.Registerer) (*navigation.Augmenter, error) {
	log := logger.SetDefault(logger.Config{
		Module:  "navaug",
		Version: version,
		Level:   o.logLevel,
		Format:  o.logFormat,
	})

	nopts := []navigation.Option{
		navigation.WithInstallDir(o.dir),
		navigation.WithDiagnostics(o.diagnostics),
		navigation.WithLogger(log),
	}

	if o.linksPath != "" {
		nopts = append(nopts, navigation.WithLinksPath(o.linksPath))
	}

	if o.translations != "" {
		cat, err := i18n.LoadCatalog(o.translations, o.lang)
		if err != nil {
			return nil, err
		}
		nopts = append(nopts, navigation.WithTranslator(cat))
	}

	if reg != nil {
		nopts = append(nopts, navigation.WithRowCounter(metric.NewRowCounter(reg)))
	}

	return navigation.New(nopts...), nil
}
