// Package reconcile classifies a batch of incoming FD records against the
// current record set and applies a caller-chosen merge strategy.
// Classification and application are separate steps so the caller can show
// a preview before anything is committed.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

// NewEntry is an incoming record with no identity match in the existing set.
type NewEntry struct {
	Index  int // 1-based position in the batch
	Record model.Incoming
}

// DuplicateEntry is an incoming record that matches an existing record in
// every compared field.
type DuplicateEntry struct {
	Index    int
	Record   model.Incoming
	Existing model.Record
}

// UpdateEntry is an incoming record whose identity matches an existing
// record but whose non-identity fields differ.
type UpdateEntry struct {
	Index    int
	Existing model.Record
	Incoming model.Incoming
	Changes  []string // human-readable old → new descriptions
}

// InvalidEntry is an incoming record that failed semantic validation.
type InvalidEntry struct {
	Index  int
	Record model.Incoming
	Reason string
}

// Analysis buckets every record of a batch. Input order is preserved
// within each bucket, and indices refer to the original batch.
type Analysis struct {
	New        []NewEntry
	Duplicates []DuplicateEntry
	Updated    []UpdateEntry
	Invalid    []InvalidEntry
}

// Total returns the number of records analyzed.
func (a *Analysis) Total() int {
	return len(a.New) + len(a.Duplicates) + len(a.Updated) + len(a.Invalid)
}

var rateCeiling = decimal.NewFromInt(100)

// Analyze classifies each incoming record against the existing set. Each
// record is matched against existing records only, never against its
// siblings in the same batch: two identical new rows both classify as new
// and will coexist after import. The existing set is never modified.
func Analyze(incoming []model.Incoming, existing []model.Record) *Analysis {
	a := &Analysis{}

	for i, in := range incoming {
		idx := i + 1

		if reason := validate(in); reason != "" {
			a.Invalid = append(a.Invalid, InvalidEntry{Index: idx, Record: in, Reason: reason})
			continue
		}

		match, found := findMatch(in, existing)
		if !found {
			a.New = append(a.New, NewEntry{Index: idx, Record: in})
			continue
		}

		changes := fieldChanges(match, in)
		if len(changes) == 0 {
			a.Duplicates = append(a.Duplicates, DuplicateEntry{Index: idx, Record: in, Existing: match})
		} else {
			a.Updated = append(a.Updated, UpdateEntry{Index: idx, Existing: match, Incoming: in, Changes: changes})
		}
	}

	return a
}

// validate returns a reason string for a rejected record, or "" when the
// record is admissible. A zero amount or rate counts as missing, mirroring
// the permissive upstream forms this data historically came from.
func validate(in model.Incoming) string {
	if strings.TrimSpace(in.AccountHolder) == "" {
		return "missing account holder"
	}
	if strings.TrimSpace(in.Bank) == "" {
		return "missing bank"
	}
	if in.StartDate.IsZero() {
		return "missing or invalid start date"
	}
	if in.Amount.IsZero() {
		return "missing amount"
	}
	if in.Amount.IsNegative() {
		return "invalid amount"
	}
	if in.Rate.IsZero() {
		return "missing rate"
	}
	if in.Rate.IsNegative() || in.Rate.GreaterThan(rateCeiling) {
		return "rate out of range"
	}
	return ""
}

// findMatch scans the existing records for one with the same identity
// tuple: holder and bank (case and whitespace insensitive), numeric
// amount, and start date.
func findMatch(in model.Incoming, existing []model.Record) (model.Record, bool) {
	for _, r := range existing {
		if model.NormalizeName(in.AccountHolder) == model.NormalizeName(r.AccountHolder) &&
			model.NormalizeName(in.Bank) == model.NormalizeName(r.Bank) &&
			in.Amount.Equal(r.Amount) &&
			in.StartDate == r.StartDate {
			return r, true
		}
	}
	return model.Record{}, false
}

// fieldChanges compares the non-identity fields of an existing record with
// the incoming one. Notes and certificate status compare byte-exact; no
// trimming or case folding applies outside identity fields. Note bodies
// never appear in the output.
func fieldChanges(existing model.Record, in model.Incoming) []string {
	var changes []string
	if !existing.Rate.Equal(in.Rate) {
		changes = append(changes, fmt.Sprintf("rate: %s → %s", existing.Rate, in.Rate))
	}
	if existing.Duration != in.Duration {
		changes = append(changes, fmt.Sprintf("duration: %d → %d", existing.Duration, in.Duration))
	}
	if existing.CertificateStatus != in.CertificateStatus {
		changes = append(changes, fmt.Sprintf("certificateStatus: %s → %s", existing.CertificateStatus, in.CertificateStatus))
	}
	if existing.Notes != in.Notes {
		changes = append(changes, "notes updated")
	}
	return changes
}
