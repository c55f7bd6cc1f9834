// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

// Package tables holds the mapping tables used for look-alike substitution:
// the built-in tables, a registry for user-defined ones, the validator, and
// the reversal builder.
package tables

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ID identifies a table within a Registry. The built-in tables use the fixed
// values below; custom tables are numbered after them in registration order.
type ID int

// XXX these are user-visible on the command line and recorded in the ledger;
// do not reorder
const (
	DeterministicSpaces ID = iota + 1
	RandomSpaces
	PartialSpaces
	Deterministic
	Random
	Partial
	PartialAll
	Fullwidth
)

// Entry is the authoring form of a single mapping: one source character and
// the concatenation of the characters that may replace it.
type Entry struct {
	Source     string `yaml:"source"`
	Candidates string `yaml:"candidates"`
}

// Table is a compiled, immutable mapping table.
type Table struct {
	id          ID
	name        string
	description string
	reversed    bool
	entries     []Entry
	sources     []rune
	index       map[rune][]rune
}

type builtinDef struct {
	id          ID
	name        string
	description string
	entries     []Entry
}

var builtinDefs = []builtinDef{
	{DeterministicSpaces, "deterministic-spaces", "Deterministic full replacement of spaces only.", deterministicSpacesEntries},
	{RandomSpaces, "random-spaces", "Random full replacement of spaces only.", randomSpacesEntries},
	{PartialSpaces, "partial-spaces", "Random partial replacement of spaces only.", partialSpacesEntries},
	{Deterministic, "deterministic", "Deterministic full replacement with the most look-alike symbols.", deterministicEntries},
	{Random, "random", "Random full replacement with various very look-alike symbols.", randomEntries},
	{Partial, "partial", "Random partial replacement with various very look-alike symbols.", partialEntries},
	{PartialAll, "partial-all", "Random partial replacement with various somewhat look-alike symbols.", partialAllEntries},
	{Fullwidth, "fullwidth", `Deterministic full replacement with paired "Fullwidth Form" symbols.`, fullwidthEntries},
}

var builtins []*Table

func init() {
	for _, def := range builtinDefs {
		table, err := compile(def.id, def.name, def.description, def.entries)
		if err != nil {
			panic(fmt.Sprintf("built-in table %s is invalid: %v", def.name, err))
		}
		builtins = append(builtins, table)
	}
}

var validTableName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// compile strictly checks the entries and builds the lookup index.
func compile(id ID, name, description string, entries []Entry) (*Table, error) {
	if err := Check(name, entries); err != nil {
		return nil, err
	}
	return build(id, name, description, entries), nil
}

// build indexes entries without checking them.
func build(id ID, name, description string, entries []Entry) *Table {
	table := &Table{
		id:          id,
		name:        name,
		description: description,
		entries:     make([]Entry, len(entries)),
		sources:     make([]rune, 0, len(entries)),
		index:       make(map[rune][]rune, len(entries)),
	}
	copy(table.entries, entries)
	for _, entry := range entries {
		source, _ := utf8.DecodeRuneInString(entry.Source)
		table.sources = append(table.sources, source)
		table.index[source] = []rune(entry.Candidates)
	}
	return table
}

// ID returns the table's identifier.
func (t *Table) ID() ID {
	return t.id
}

// Name returns the table's short name, e.g. "fullwidth".
func (t *Table) Name() string {
	return t.name
}

// Description returns the human-readable label of the table.
func (t *Table) Description() string {
	return t.description
}

// Reversed reports whether this table was produced by Invert.
func (t *Table) Reversed() bool {
	return t.reversed
}

// Len returns the number of source characters.
func (t *Table) Len() int {
	return len(t.sources)
}

// Entries returns a copy of the table in authoring form, in table order.
func (t *Table) Entries() []Entry {
	result := make([]Entry, len(t.entries))
	copy(result, t.entries)
	return result
}

// Sources returns the source characters in table order.
func (t *Table) Sources() []rune {
	result := make([]rune, len(t.sources))
	copy(result, t.sources)
	return result
}

// Candidates returns the candidate set for r. The returned slice is shared
// and must not be modified.
func (t *Table) Candidates(r rune) (candidates []rune, ok bool) {
	candidates, ok = t.index[r]
	return
}

// Deterministic reports whether every candidate set has exactly one member,
// which makes substitution with this table independent of randomness.
func (t *Table) Deterministic() bool {
	for _, candidates := range t.index {
		if len(candidates) != 1 {
			return false
		}
	}
	return true
}

func (t *Table) String() string {
	if t.reversed {
		return fmt.Sprintf("%d (%s, reversed)", t.id, t.name)
	}
	return fmt.Sprintf("%d (%s)", t.id, t.name)
}

// All returns the built-in tables in ID order.
func All() []*Table {
	result := make([]*Table, len(builtins))
	copy(result, builtins)
	return result
}

// Lookup returns the built-in table with the given ID.
func Lookup(id ID) (*Table, error) {
	if id < DeterministicSpaces || int(id) > len(builtins) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTable, id)
	}
	return builtins[id-1], nil
}

// Registry is an ordered set of tables: the built-ins followed by any
// custom tables. A Registry is not safe for concurrent registration, but
// lookups may run concurrently once registration is done.
type Registry struct {
	tables []*Table
	byName map[string]*Table
}

// DefaultRegistry returns a new registry holding only the built-in tables.
func DefaultRegistry() *Registry {
	registry := &Registry{
		byName: make(map[string]*Table),
	}
	for _, table := range builtins {
		registry.tables = append(registry.tables, table)
		registry.byName[table.name] = table
	}
	return registry
}

// Register compiles a custom table and assigns it the next free ID.
func (r *Registry) Register(name, description string, entries []Entry) (*Table, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyTableName
	}
	if !validTableName.MatchString(name) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTableName, name)
	}
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTableName, name)
	}

	table, err := compile(ID(len(r.tables)+1), name, description, entries)
	if err != nil {
		return nil, err
	}
	r.tables = append(r.tables, table)
	r.byName[name] = table
	return table, nil
}

// Lookup returns the table with the given ID.
func (r *Registry) Lookup(id ID) (*Table, error) {
	if id < 1 || int(id) > len(r.tables) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTable, id)
	}
	return r.tables[id-1], nil
}

// LookupName returns the table with the given name (case-insensitive).
func (r *Registry) LookupName(name string) (*Table, error) {
	table, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return table, nil
}

// Resolve accepts either a table number or a table name.
func (r *Registry) Resolve(ref string) (*Table, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return r.Lookup(ID(id))
	}
	return r.LookupName(ref)
}

// All returns every table in the registry in ID order.
func (r *Registry) All() []*Table {
	result := make([]*Table, len(r.tables))
	copy(result, r.tables)
	return result
}
