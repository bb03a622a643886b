package reconcile

import (
	"fmt"
	"time"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

// Strategy selects how an analyzed batch is merged into the record set.
type Strategy string

const (
	// StrategyNewOnly appends new records and ignores duplicates and
	// updates.
	StrategyNewOnly Strategy = "new"
	// StrategyNewAndUpdate appends new records and overwrites the mutable
	// fields of records in the updated bucket.
	StrategyNewAndUpdate Strategy = "newAndUpdate"
	// StrategyImportAll appends everything as brand-new records regardless
	// of identity collisions. The explicit "trust the user" escape hatch.
	StrategyImportAll Strategy = "all"
)

// ParseStrategy maps the strategy string chosen in the preview UI.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyNewOnly, StrategyNewAndUpdate, StrategyImportAll:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown import strategy %q (want new, newAndUpdate, or all)", s)
}

// Outcome is the result of applying a strategy: the replacement record and
// holder sets plus the counts shown to the user.
type Outcome struct {
	Records []model.Record
	Holders []string

	Added   int
	Updated int
	Skipped int // exact duplicates left alone
	Invalid int
	Total   int // record count after the merge
}

// Applier materializes incoming records. Now and NewID are injectable for
// tests; NewApplier wires the production clock and ID source.
type Applier struct {
	Now   func() time.Time
	NewID func() string
}

// NewApplier returns an Applier using the system clock and random IDs.
func NewApplier() *Applier {
	return &Applier{Now: time.Now, NewID: id.New}
}

// Apply merges an analyzed batch into copies of the given record and
// holder sets. The inputs are never mutated, so a failed or abandoned
// apply leaves the caller's state untouched and the whole merge commits in
// one persist.
func (ap *Applier) Apply(a *Analysis, strategy Strategy, records []model.Record, holders []string) (Outcome, error) {
	out := Outcome{
		Records: append([]model.Record(nil), records...),
		Holders: append([]string(nil), holders...),
		Invalid: len(a.Invalid),
	}

	appendNew := func(in model.Incoming) {
		rec := ap.materialize(in)
		if !containsHolder(out.Holders, rec.AccountHolder) {
			out.Holders = append(out.Holders, rec.AccountHolder)
		}
		out.Records = append(out.Records, rec)
		out.Added++
	}

	switch strategy {
	case StrategyNewOnly:
		for _, e := range a.New {
			appendNew(e.Record)
		}
		out.Skipped = len(a.Duplicates)

	case StrategyNewAndUpdate:
		for _, e := range a.New {
			appendNew(e.Record)
		}
		for _, e := range a.Updated {
			if ap.updateInPlace(out.Records, e) {
				out.Updated++
			}
		}
		out.Skipped = len(a.Duplicates)

	case StrategyImportAll:
		for _, e := range a.New {
			appendNew(e.Record)
		}
		for _, e := range a.Duplicates {
			appendNew(e.Record)
		}
		for _, e := range a.Updated {
			appendNew(e.Incoming)
		}

	default:
		return Outcome{}, fmt.Errorf("unknown import strategy %q", strategy)
	}

	out.Total = len(out.Records)
	return out, nil
}

// materialize turns an incoming row into a full record: fresh ID, creation
// timestamp, defaults filled, and the maturity date derived when the row
// did not carry one.
func (ap *Applier) materialize(in model.Incoming) model.Record {
	rec := model.Record{
		ID:                ap.NewID(),
		AccountHolder:     in.AccountHolder,
		Bank:              in.Bank,
		Amount:            in.Amount,
		Duration:          in.Duration,
		DurationUnit:      in.DurationUnit,
		Rate:              in.Rate,
		StartDate:         in.StartDate,
		MaturityDate:      in.MaturityDate,
		CertificateStatus: in.CertificateStatus,
		Notes:             in.Notes,
		CreatedAt:         ap.Now(),
	}
	if rec.DurationUnit == "" {
		rec.DurationUnit = model.UnitMonths
	}
	if rec.CertificateStatus == "" {
		rec.CertificateStatus = model.CertificateNotObtained
	}
	if rec.MaturityDate.IsZero() && rec.Duration > 0 {
		rec.MaturityDate = schedule.MaturityDate(rec.StartDate, rec.Duration, rec.DurationUnit)
	}
	return rec
}

// updateInPlace replaces the mutable fields of the matched record,
// preserving its ID and creation timestamp. The maturity date follows the
// incoming row when explicit, otherwise it is recomputed from the incoming
// term.
func (ap *Applier) updateInPlace(records []model.Record, e UpdateEntry) bool {
	for i := range records {
		if records[i].ID != e.Existing.ID {
			continue
		}

		in := e.Incoming
		maturity := in.MaturityDate
		if maturity.IsZero() {
			maturity = schedule.MaturityDate(in.StartDate, in.Duration, in.DurationUnit)
		}

		records[i].Rate = in.Rate
		records[i].Duration = in.Duration
		records[i].DurationUnit = in.DurationUnit
		records[i].MaturityDate = maturity
		records[i].CertificateStatus = in.CertificateStatus
		records[i].Notes = in.Notes
		records[i].UpdatedAt = ap.Now()
		return true
	}
	return false
}

func containsHolder(holders []string, name string) bool {
	for _, h := range holders {
		if h == name {
			return true
		}
	}
	return false
}
