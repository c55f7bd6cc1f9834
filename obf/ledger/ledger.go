// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

// Package ledger records the parameters of past obfuscations, keyed by a
// fingerprint of the obfuscated text, so that a later reversal can find the
// table and flags that produced it.
package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/tidwall/buntdb"
	"golang.org/x/crypto/sha3"

	"github.com/txtobf/txtobf/obf/logger"
)

const (
	// MemoryPath opens a ledger that lives only as long as the process.
	MemoryPath = ":memory:"

	keySchemaVersion = "db.version"
	// latest schema of the db
	latestSchema = "1"

	keyRecordPrefix = "record "
	indexCreated    = "created"
)

// Record is what the ledger keeps about one obfuscation.
type Record struct {
	Fingerprint  string `json:"fingerprint"`
	Table        int    `json:"table"`
	TableName    string `json:"table-name"`
	Seed         int64  `json:"seed"`
	Gaps         bool   `json:"gaps"`
	NoisePercent int    `json:"noise-percent"`
	Normalize    bool   `json:"normalize"`
	InputBytes   uint64 `json:"input-bytes"`
	OutputBytes  uint64 `json:"output-bytes"`
	// unix nanoseconds, so the index orders records by age
	CreatedAt int64 `json:"created"`
}

// Created returns the time the record was made.
func (record *Record) Created() time.Time {
	return time.Unix(0, record.CreatedAt).UTC()
}

// Sizes formats the input and output sizes for display, e.g. "1.2K -> 3.5K".
func (record *Record) Sizes() string {
	return fmt.Sprintf("%s -> %s", bytefmt.ByteSize(record.InputBytes), bytefmt.ByteSize(record.OutputBytes))
}

func (record *Record) String() string {
	fingerprint := record.Fingerprint
	if len(fingerprint) > 16 {
		fingerprint = fingerprint[:16]
	}
	return fmt.Sprintf("%s  %s  table=%d (%s) seed=%d gaps=%t noise=%d%% normalize=%t  %s",
		record.Created().Format(time.RFC3339), fingerprint, record.Table, record.TableName,
		record.Seed, record.Gaps, record.NoisePercent, record.Normalize, record.Sizes())
}

// Fingerprint identifies a text by the hex SHA3-256 digest of its bytes.
func Fingerprint(text string) string {
	digest := sha3.Sum256([]byte(text))
	return hex.EncodeToString(digest[:])
}

// Ledger is a buntdb-backed store of Records. The file is locked for as
// long as the ledger is open.
type Ledger struct {
	db     *buntdb.DB
	flock  flocker
	logger *logger.Manager
}

// Open opens (creating if necessary) the ledger at path.
func Open(path string, log *logger.Manager) (ledger *Ledger, err error) {
	ledger = &Ledger{logger: log}
	if path == MemoryPath {
		ledger.flock = &noopFlocker{}
	} else {
		ledger.flock, err = tryAcquireFlock(path + ".lock")
		if err != nil {
			return nil, err
		}
	}
	defer func() {
		if err != nil {
			ledger.flock.Unlock()
			ledger = nil
		}
	}()

	ledger.db, err = buntdb.Open(path)
	if err != nil {
		return
	}
	if err = ledger.checkSchema(); err != nil {
		ledger.db.Close()
		return
	}
	err = ledger.db.CreateIndex(indexCreated, keyRecordPrefix+"*", buntdb.IndexJSON(indexCreated))
	if err != nil {
		ledger.db.Close()
		return
	}
	ledger.logger.Debug(logger.TypeLedger, "opened", path)
	return
}

// checkSchema stamps a new ledger with the current schema version, or
// verifies the version of an existing one.
func (ledger *Ledger) checkSchema() error {
	var version string
	err := ledger.db.Update(func(tx *buntdb.Tx) error {
		var err error
		version, err = tx.Get(keySchemaVersion)
		if err == buntdb.ErrNotFound {
			version = latestSchema
			_, _, err = tx.Set(keySchemaVersion, latestSchema, nil)
		}
		return err
	})
	if err != nil {
		return err
	}
	if version != latestSchema {
		return &IncompatibleSchemaError{CurrentVersion: version, RequiredVersion: latestSchema}
	}
	return nil
}

// Close releases the database and the lock.
func (ledger *Ledger) Close() error {
	dbErr := ledger.db.Close()
	lockErr := ledger.flock.Unlock()
	if dbErr != nil {
		return dbErr
	}
	return lockErr
}

// Put stores record, replacing any record with the same fingerprint. A
// zero CreatedAt is set to the current time.
func (ledger *Ledger) Put(record Record) error {
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().UnixNano()
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	err = ledger.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(keyRecordPrefix+record.Fingerprint, string(data), nil)
		return err
	})
	if err == nil {
		ledger.logger.Debug(logger.TypeLedger, "recorded", record.Fingerprint, record.Sizes())
	}
	return err
}

// Get returns the record for a fingerprint, or ErrNotFound.
func (ledger *Ledger) Get(fingerprint string) (record Record, err error) {
	var data string
	err = ledger.db.View(func(tx *buntdb.Tx) error {
		data, err = tx.Get(keyRecordPrefix + fingerprint)
		return err
	})
	if err == buntdb.ErrNotFound {
		return record, ErrNotFound
	} else if err != nil {
		return
	}
	err = json.Unmarshal([]byte(data), &record)
	return
}

// List returns every record, oldest first.
func (ledger *Ledger) List() (result []Record, err error) {
	err = ledger.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(indexCreated, func(key, value string) bool {
			var record Record
			if err := json.Unmarshal([]byte(value), &record); err != nil {
				ledger.logger.Error(logger.TypeLedger, "invalid record", strings.TrimPrefix(key, keyRecordPrefix), err.Error())
				return true
			}
			result = append(result, record)
			return true
		})
	})
	return
}

// Delete removes the record for a fingerprint. Deleting a nonexistent
// record is not considered an error.
func (ledger *Ledger) Delete(fingerprint string) error {
	err := ledger.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(keyRecordPrefix + fingerprint)
		return err
	})
	switch err {
	case buntdb.ErrNotFound:
		return nil
	default:
		return err
	}
}
