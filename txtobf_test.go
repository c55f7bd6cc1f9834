// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/txtobf/txtobf/obf"
	"github.com/txtobf/txtobf/obf/ledger"
	"github.com/txtobf/txtobf/obf/logger"
	"github.com/txtobf/txtobf/obf/tables"
)

func captureLogger(t *testing.T) (*logger.Manager, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	logman, err := logger.NewManagerWithWriters([]logger.LoggingConfig{
		{
			MethodStderr: true,
			Level:        logger.LogDebug,
			Types:        []string{"*"},
		},
	}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	return logman, &stderr
}

func TestPolicyForReverse(t *testing.T) {
	const obfuscated = "\uFF28\u200A\uFF49"
	config := obf.DefaultConfig()

	type reverseTest struct {
		name     string
		record   *ledger.Record
		noLedger bool
		tableRef string
		gaps     bool
		expected obf.Policy
		warned   bool
	}
	testCases := []reverseTest{
		{
			name:     "record found",
			record:   &ledger.Record{Fingerprint: ledger.Fingerprint(obfuscated), Table: int(tables.Fullwidth), TableName: "fullwidth", Gaps: true, NoisePercent: 40},
			expected: obf.Policy{Table: tables.Fullwidth, Reverse: true, Gaps: true},
		},
		{
			name:     "record for other text",
			record:   &ledger.Record{Fingerprint: ledger.Fingerprint("other"), TableName: "fullwidth", Gaps: true},
			expected: obf.Policy{Table: tables.Deterministic, Reverse: true},
			warned:   true,
		},
		{
			name:     "ledger unavailable",
			noLedger: true,
			gaps:     true,
			expected: obf.Policy{Table: tables.Deterministic, Reverse: true, Gaps: true},
			warned:   true,
		},
		{
			name:     "explicit table wins",
			record:   &ledger.Record{Fingerprint: ledger.Fingerprint(obfuscated), TableName: "fullwidth", Gaps: true},
			tableRef: "random",
			expected: obf.Policy{Table: tables.Random, Reverse: true},
		},
	}
	for i, tt := range testCases {
		t.Run(fmt.Sprintf("case %d: %s", i, tt.name), func(t *testing.T) {
			logman, logged := captureLogger(t)
			var runs *ledger.Ledger
			if !tt.noLedger {
				var err error
				runs, err = ledger.Open(ledger.MemoryPath, logman)
				if err != nil {
					t.Fatal(err)
				}
				defer runs.Close()
				if tt.record != nil {
					if err := runs.Put(*tt.record); err != nil {
						t.Fatal(err)
					}
				}
			}

			policy, err := policyForReverse(config, runs, logman, obfuscated, tt.tableRef, tt.gaps)
			if err != nil {
				t.Fatal(err)
			}
			if diff := deep.Equal(policy, tt.expected); diff != nil {
				t.Error(diff)
			}
			warned := strings.Contains(logged.String(), "using default table")
			if warned != tt.warned {
				t.Errorf("fallback warning logged: %t, expected %t\n%s", warned, tt.warned, logged.String())
			}
		})
	}
}

func TestPolicyForReverseUnknownTable(t *testing.T) {
	logman, _ := captureLogger(t)
	runs, err := ledger.Open(ledger.MemoryPath, logman)
	if err != nil {
		t.Fatal(err)
	}
	defer runs.Close()
	// a record naming a table this config doesn't define
	if err := runs.Put(ledger.Record{Fingerprint: ledger.Fingerprint("x"), TableName: "circled"}); err != nil {
		t.Fatal(err)
	}

	_, err = policyForReverse(obf.DefaultConfig(), runs, logman, "x", "", false)
	if !errors.Is(err, tables.ErrUnknownTable) {
		t.Errorf("expected ErrUnknownTable, got %v", err)
	}
}

func TestOpenLedgerLocked(t *testing.T) {
	logman, _ := captureLogger(t)
	config := obf.DefaultConfig()
	config.Ledger.Path = filepath.Join(t.TempDir(), "txtobf.db")

	held, err := openLedger(config, logman)
	if err != nil {
		t.Fatal(err)
	}
	defer held.Close()

	// a held lock is reported to the caller instead of exiting
	runs, err := openLedger(config, logman)
	if !errors.Is(err, ledger.ErrLocked) || runs != nil {
		t.Errorf("expected ErrLocked, got %v", err)
	}

	config.Ledger.Enabled = false
	if runs, err := openLedger(config, logman); runs != nil || err != nil {
		t.Errorf("a disabled ledger should give nil, nil; got %v", err)
	}
}
