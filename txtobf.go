// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/docopt/docopt-go"
	"github.com/txtobf/txtobf/obf"
	"github.com/txtobf/txtobf/obf/ledger"
	"github.com/txtobf/txtobf/obf/logger"
	"github.com/txtobf/txtobf/obf/tables"
	"github.com/txtobf/txtobf/obf/utils"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

func versionString() string {
	result := "txtobf-" + version
	if version == "" {
		result = "txtobf-unreleased"
	}
	if commit != "" {
		result = fmt.Sprintf("%s-%s", result, commit)
	}
	return result
}

// optional returns the value of an option that has no default, or "".
func optional(arguments docopt.Opts, key string) string {
	if value, ok := arguments[key].(string); ok {
		return value
	}
	return ""
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		if term.IsTerminal(int(syscall.Stdin)) {
			return "", errors.New("Refusing to read input from a terminal (use --input or a pipe)")
		}
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path string, output string, force bool) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, output)
		return err
	}
	return utils.WriteFile(path, []byte(output), force)
}

func showVerbose(input, output string) {
	fmt.Fprintf(os.Stderr, "Input:\n%s\n\nOutput:\n%s\n\n", utils.Escape(input), utils.Escape(output))
}

// openLedger returns nil, nil if the ledger is disabled.
func openLedger(config *obf.Config, logman *logger.Manager) (*ledger.Ledger, error) {
	if !config.Ledger.Enabled {
		return nil, nil
	}
	return ledger.Open(config.Ledger.Path, logman)
}

// policyForReverse resolves the policy for undoing input. Without an
// explicit table, it reuses the table and gaps setting recorded for input in
// runs (which may be nil), falling back to the default table.
func policyForReverse(config *obf.Config, runs *ledger.Ledger, logman *logger.Manager, input, tableRef string, gaps bool) (policy obf.Policy, err error) {
	if tableRef == "" && runs != nil {
		record, err := runs.Get(ledger.Fingerprint(input))
		if err == nil {
			logman.Info(logger.TypeLedger, "found matching run", record.String())
			tableRef = record.TableName
			gaps = gaps || record.Gaps
		} else if !errors.Is(err, ledger.ErrNotFound) {
			return policy, err
		}
	}
	if tableRef == "" {
		logman.Warning(logger.TypeCLI, "no --table given and no ledger record matches; using default table", config.Defaults.Table)
	}

	policy, err = config.Policy(tableRef)
	if err != nil {
		return
	}
	policy.Reverse = true
	policy.Gaps = gaps
	policy.NoisePercent = 0
	policy.Normalize = false
	return
}

// implements the `txtobf obfuscate` command
func doObfuscate(arguments docopt.Opts, config *obf.Config, logman *logger.Manager) error {
	policy, err := config.Policy(optional(arguments, "--table"))
	if err != nil {
		return err
	}
	if arguments["--gaps"].(bool) {
		policy.Gaps = true
	}
	if arguments["--normalize"].(bool) {
		policy.Normalize = true
	}
	if noise := optional(arguments, "--noise"); noise != "" {
		policy.NoisePercent, err = strconv.Atoi(noise)
		if err != nil {
			return fmt.Errorf("Invalid noise percent %s: %w", noise, err)
		}
	}
	if seedStr := optional(arguments, "--seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid seed %s: %w", seedStr, err)
		}
		policy.Seed = &seed
	}

	pipeline, err := obf.NewPipeline(config.Registry(), policy)
	if err != nil {
		return err
	}
	// opened before any output is written; the run is recorded only if it
	// succeeds, and a ledger that can't be opened doesn't stop the run
	runs, err := openLedger(config, logman)
	if err != nil {
		logman.Warning(logger.TypeLedger, "run will not be recorded", err.Error())
	} else if runs != nil {
		defer runs.Close()
	}
	input, err := readInput(optional(arguments, "--input"))
	if err != nil {
		return err
	}
	output, err := pipeline.String(input)
	if err != nil {
		return err
	}
	if err = writeOutput(optional(arguments, "--output"), output, arguments["--force"].(bool)); err != nil {
		return err
	}
	if arguments["--verbose"].(bool) {
		showVerbose(input, output)
	}

	record := ledger.Record{
		Fingerprint:  ledger.Fingerprint(output),
		Table:        int(pipeline.Table().ID()),
		TableName:    pipeline.Table().Name(),
		Seed:         pipeline.Seed(),
		Gaps:         policy.Gaps,
		NoisePercent: policy.NoisePercent,
		Normalize:    policy.Normalize,
		InputBytes:   uint64(len(input)),
		OutputBytes:  uint64(len(output)),
	}
	logman.Info(logger.TypePipeline, pipeline.Describe(), record.Sizes())

	if runs != nil {
		if err := runs.Put(record); err != nil {
			logman.Warning(logger.TypeLedger, "could not record run", err.Error())
		}
	}
	return nil
}

// implements the `txtobf reverse` command
func doReverse(arguments docopt.Opts, config *obf.Config, logman *logger.Manager) error {
	input, err := readInput(optional(arguments, "--input"))
	if err != nil {
		return err
	}

	tableRef := optional(arguments, "--table")
	var runs *ledger.Ledger
	if tableRef == "" {
		runs, err = openLedger(config, logman)
		if err != nil {
			logman.Warning(logger.TypeLedger, "could not consult the ledger", err.Error())
		} else if runs != nil {
			defer runs.Close()
		}
	}

	policy, err := policyForReverse(config, runs, logman, input, tableRef, arguments["--gaps"].(bool))
	if err != nil {
		return err
	}
	policy.Skeleton = arguments["--skeleton"].(bool)

	pipeline, err := obf.NewPipeline(config.Registry(), policy)
	if err != nil {
		return err
	}
	output, err := pipeline.String(input)
	if err != nil {
		return err
	}
	if err = writeOutput(optional(arguments, "--output"), output, arguments["--force"].(bool)); err != nil {
		return err
	}
	if arguments["--verbose"].(bool) {
		showVerbose(input, output)
	}
	logman.Info(logger.TypePipeline, pipeline.Describe())
	return nil
}

// implements the `txtobf check` command
func doCheck(arguments docopt.Opts, config *obf.Config, logman *logger.Manager) error {
	registry := config.Registry()
	toCheck := registry.All()
	if refs, ok := arguments["<table>"].([]string); ok && len(refs) != 0 {
		toCheck = nil
		for _, ref := range refs {
			table, err := registry.Resolve(ref)
			if err != nil {
				return err
			}
			toCheck = append(toCheck, table)
		}
	}

	failed := 0
	for _, table := range toCheck {
		problems := table.Diagnose()
		errorCount := 0
		for _, problem := range problems {
			if problem.Severity == tables.SeverityError {
				errorCount++
			}
			fmt.Printf("%s: %s\n", table, problem)
		}
		if errorCount != 0 {
			failed++
		}
		logman.Info(logger.TypeTables, table.String(), fmt.Sprintf("%d entries", table.Len()), fmt.Sprintf("%d problems", len(problems)))
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d tables failed validation", failed, len(toCheck))
	}
	return nil
}

// implements the `txtobf tables` command
func doTables(config *obf.Config) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENTRIES\tMODE\tDESCRIPTION")
	for _, table := range config.Registry().All() {
		mode := "random"
		if table.Deterministic() {
			mode = "deterministic"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", table.ID(), table.Name(), table.Len(), mode, table.Description())
	}
	w.Flush()
}

// implements the `txtobf ledger` command
func doLedger(config *obf.Config, logman *logger.Manager) error {
	runs, err := openLedger(config, logman)
	if err != nil {
		return err
	} else if runs == nil {
		return errors.New("The ledger is disabled in the configuration")
	}
	defer runs.Close()
	records, err := runs.List()
	if err != nil {
		return err
	}
	for _, record := range records {
		fmt.Println(record.String())
	}
	return nil
}

func main() {
	usage := `txtobf.
Usage:
	txtobf obfuscate [--table <table>] [--input <file>] [--output <file>] [--seed <seed>] [--gaps] [--noise <percent>] [--normalize] [--force] [--verbose] [--conf <filename>]
	txtobf reverse [--table <table>] [--input <file>] [--output <file>] [--gaps] [--skeleton] [--force] [--verbose] [--conf <filename>]
	txtobf check [<table>...] [--conf <filename>]
	txtobf tables [--conf <filename>]
	txtobf ledger [--conf <filename>]
	txtobf -h | --help
	txtobf --version
Options:
	-t --table <table>     Mapping table, by number or name (see "txtobf tables").
	-i --input <file>      Input file; "-" or absent reads stdin.
	-o --output <file>     Output file; "-" or absent writes stdout.
	-s --seed <seed>       Random seed, for reproducible output.
	-g --gaps              Disguise spaces and widen letter spacing (or undo it).
	-n --noise <percent>   Chance of a zero-width marker between two letters.
	--normalize            Compose the input to NFC first.
	--skeleton             Fold leftover look-alikes to ASCII after reversing.
	-f --force             Overwrite an existing output file.
	-v --verbose           Show the input and output with invisible characters escaped.
	--conf <filename>      Configuration file to use [default: txtobf.yaml].
	-h --help              Show this screen.
	--version              Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, versionString())

	config, err := obf.LoadConfigOrDefault(arguments["--conf"].(string))
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	defer logman.Close()

	switch {
	case arguments["obfuscate"].(bool):
		err = doObfuscate(arguments, config, logman)
	case arguments["reverse"].(bool):
		err = doReverse(arguments, config, logman)
	case arguments["check"].(bool):
		err = doCheck(arguments, config, logman)
	case arguments["tables"].(bool):
		doTables(config)
	case arguments["ledger"].(bool):
		err = doLedger(config, logman)
	}
	if err != nil {
		logman.Error(logger.TypeCLI, err.Error())
		logman.Close()
		fmt.Fprintln(os.Stderr, "txtobf:", err.Error())
		os.Exit(1)
	}
}
