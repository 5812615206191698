package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mobiusklein/soa-derive/derive"
	"github.com/mobiusklein/soa-derive/record"
	"github.com/mobiusklein/soa-derive/soa"
)

func main() {
	var (
		srcFile     = flag.String("src", "", "Path to the annotated Go source file")
		typeName    = flag.String("type", "", "Record type to derive (default: every annotated type)")
		outFile     = flag.String("o", "", "Output file (single type only; default <type>_soa.go)")
		pkgName     = flag.String("pkg", "", "Package clause override for generated files")
		configFile  = flag.String("config", "", "YAML config file")
		list        = flag.Bool("list", false, "List the generated families and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	cfg := &soagenConfig{}
	if *configFile != "" {
		loaded, err := loadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *srcFile != "" {
		cfg.Source = *srcFile
	}
	if *typeName != "" {
		cfg.Types = []string{*typeName}
	}
	if *pkgName != "" {
		cfg.Package = *pkgName
	}

	if cfg.Source == "" {
		fmt.Fprintln(os.Stderr, "Usage: soagen -src <file.go> [-type name] [-o file] [-pkg name]")
		fmt.Fprintln(os.Stderr, "       soagen -src <file.go> -list")
		fmt.Fprintln(os.Stderr, "       soagen -src <file.go> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       soagen -config <soagen.yaml>")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		derive.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *outFile, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *soagenConfig, outFile string, listOnly bool) error {
	types := cfg.Types
	if len(types) == 0 {
		src, err := os.ReadFile(cfg.Source)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		types, err = record.FindDerivable(src)
		if err != nil {
			return err
		}
		if len(types) == 0 {
			return fmt.Errorf("%s: no annotated record types", cfg.Source)
		}
	}
	if (outFile != "" || cfg.Output != "") && len(types) > 1 {
		return fmt.Errorf("one output file cannot hold %d types", len(types))
	}

	opts := derive.Options{Package: cfg.Package, Runtime: cfg.Runtime}

	reg := &soa.Registry{}
	for _, name := range types {
		res, err := derive.File(cfg.Source, name, opts)
		if err != nil {
			return err
		}
		reg.Publish(res.Report)

		if listOnly {
			continue
		}
		path := outputPath(cfg.Source, outFile, cfg.Output, name)
		if err := os.WriteFile(path, res.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("%s: wrote %s\n", name, path)
	}

	reg.Ready(printImplSet)
	return nil
}

// outputPath resolves where one type's generated file goes: the -o flag
// wins over the config's output, and both fall back to <type>_soa.go next
// to the source.
func outputPath(source, flagOut, cfgOut, typeName string) string {
	if flagOut != "" {
		return flagOut
	}
	if cfgOut != "" {
		return cfgOut
	}
	return filepath.Join(filepath.Dir(source), strings.ToLower(typeName)+"_soa.go")
}

var (
	recordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func printImplSet(s soa.ImplSet) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	name := s.Record
	if styled {
		name = recordStyle.Render(name)
	}
	fmt.Printf("%s generates %d types:\n", name, len(s.Types))
	for _, ti := range s.Types {
		kind := ti.Kind
		if styled {
			kind = kindStyle.Render(kind)
		}
		marker := ""
		if ti.Marker {
			marker = " [plain]"
		}
		fmt.Printf("  %-28s %s%s\n", ti.Name, kind, marker)
	}
}
