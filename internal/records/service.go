// Package records provides business logic over the in-memory FD record
// set: lookups, mutation, renewal, search, and the CSV exchange format.
package records

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/id"
	"github.com/fdkeep-dev/fdkeep/internal/interest"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

// Service owns a working copy of the record set. Commands load it from the
// vault, mutate, and persist All() back in a single save.
type Service struct {
	records []model.Record

	now   func() time.Time
	newID func() string
}

// NewService creates a Service over a copy of records.
func NewService(records []model.Record) *Service {
	return &Service{
		records: append([]model.Record(nil), records...),
		now:     time.Now,
		newID:   id.New,
	}
}

// All returns the current record set.
func (s *Service) All() []model.Record {
	return s.records
}

// Len returns the number of records.
func (s *Service) Len() int { return len(s.records) }

// Get returns a record by ID or ID prefix.
func (s *Service) Get(recordID string) (model.Record, error) {
	var found []model.Record
	for _, r := range s.records {
		if r.ID == recordID {
			return r, nil
		}
		if strings.HasPrefix(r.ID, recordID) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return model.Record{}, fmt.Errorf("no record with id %q", recordID)
	case 1:
		return found[0], nil
	default:
		return model.Record{}, fmt.Errorf("id %q is ambiguous (%d matches)", recordID, len(found))
	}
}

// AddParams holds the user-entered fields for a new record.
type AddParams struct {
	AccountHolder     string
	Bank              string
	Amount            decimal.Decimal
	Duration          int
	DurationUnit      model.DurationUnit
	Rate              decimal.Decimal
	StartDate         model.Date
	MaturityDate      model.Date // optional; derived when zero
	CertificateStatus model.CertificateStatus
	Notes             string
}

func (p AddParams) validate() error {
	if strings.TrimSpace(p.AccountHolder) == "" {
		return fmt.Errorf("account holder is required")
	}
	if strings.TrimSpace(p.Bank) == "" {
		return fmt.Errorf("bank is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if p.Rate.IsNegative() || p.Rate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("rate must be between 0 and 100")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	return nil
}

// Add validates params and appends a new record, returning it.
func (s *Service) Add(p AddParams) (model.Record, error) {
	if err := p.validate(); err != nil {
		return model.Record{}, err
	}

	unit := p.DurationUnit
	if unit == "" {
		unit = model.UnitMonths
	}
	status := p.CertificateStatus
	if status == "" {
		status = model.CertificateNotObtained
	}
	maturity := p.MaturityDate
	if maturity.IsZero() {
		maturity = schedule.MaturityDate(p.StartDate, p.Duration, unit)
	}

	rec := model.Record{
		ID:                s.newID(),
		AccountHolder:     strings.TrimSpace(p.AccountHolder),
		Bank:              strings.TrimSpace(p.Bank),
		Amount:            p.Amount,
		Duration:          p.Duration,
		DurationUnit:      unit,
		Rate:              p.Rate,
		StartDate:         p.StartDate,
		MaturityDate:      maturity,
		CertificateStatus: status,
		Notes:             p.Notes,
		CreatedAt:         s.now(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// Delete removes a record by exact ID. Reports whether anything was
// removed.
func (s *Service) Delete(recordID string) bool {
	for i, r := range s.records {
		if r.ID == recordID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteByHolder removes every record owned by the holder (exact name) and
// returns the number removed.
func (s *Service) DeleteByHolder(holder string) int {
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if r.AccountHolder == holder {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed
}

// RenewParams controls how a matured FD rolls into a new one.
type RenewParams struct {
	StartDate model.Date      // defaults to the original's maturity date
	Rate      decimal.Decimal // defaults to the original's rate
	Reinvest  bool            // fold accrued interest into the new principal
}

// Renew creates a new record continuing the given one. The original record
// is left untouched; renewals are separate deposits with their own IDs.
func (s *Service) Renew(recordID string, p RenewParams) (model.Record, error) {
	orig, err := s.Get(recordID)
	if err != nil {
		return model.Record{}, err
	}

	start := p.StartDate
	if start.IsZero() {
		start = schedule.EffectiveMaturity(orig)
	}
	rate := p.Rate
	if rate.IsZero() {
		rate = orig.Rate
	}
	amount := orig.Amount
	if p.Reinvest {
		amount = amount.Add(interest.ForRecord(orig))
	}

	rec := model.Record{
		ID:                s.newID(),
		AccountHolder:     orig.AccountHolder,
		Bank:              orig.Bank,
		Amount:            amount,
		Duration:          orig.Duration,
		DurationUnit:      orig.DurationUnit,
		Rate:              rate,
		StartDate:         start,
		MaturityDate:      schedule.MaturityDate(start, orig.Duration, orig.DurationUnit),
		CertificateStatus: model.CertificateNotObtained,
		Notes:             fmt.Sprintf("Renewal of FD from %s", orig.StartDate),
		CreatedAt:         s.now(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// DuplicateLast appends a copy of the most recently created record with a
// fresh ID, for rapid entry of near-identical deposits.
func (s *Service) DuplicateLast() (model.Record, error) {
	if len(s.records) == 0 {
		return model.Record{}, fmt.Errorf("no records to duplicate")
	}
	rec := s.records[len(s.records)-1]
	rec.ID = s.newID()
	rec.CreatedAt = s.now()
	rec.UpdatedAt = time.Time{}
	s.records = append(s.records, rec)
	return rec, nil
}

// Search returns records whose holder, bank, or amount contains the query,
// case-insensitively. An empty query returns everything. The result is
// always a fresh slice, safe for callers to reorder.
func Search(records []model.Record, query string) []model.Record {
	if query == "" {
		return append([]model.Record(nil), records...)
	}
	q := strings.ToLower(query)
	var out []model.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Bank), q) ||
			strings.Contains(strings.ToLower(r.AccountHolder), q) ||
			strings.Contains(r.Amount.String(), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByStatus keeps records whose schedule status matches.
func FilterByStatus(records []model.Record, status schedule.Status, now time.Time) []model.Record {
	var out []model.Record
	for _, r := range records {
		if schedule.StatusOf(r, now) == status {
			out = append(out, r)
		}
	}
	return out
}

// SortBy orders records by one of: holder, bank, amount, rate, start,
// maturity. Unknown columns leave the order untouched.
func SortBy(records []model.Record, column string, descending bool) {
	var less func(a, b model.Record) bool
	switch column {
	case "holder":
		less = func(a, b model.Record) bool { return a.AccountHolder < b.AccountHolder }
	case "bank":
		less = func(a, b model.Record) bool { return a.Bank < b.Bank }
	case "amount":
		less = func(a, b model.Record) bool { return a.Amount.LessThan(b.Amount) }
	case "rate":
		less = func(a, b model.Record) bool { return a.Rate.LessThan(b.Rate) }
	case "start":
		less = func(a, b model.Record) bool { return a.StartDate.Before(b.StartDate) }
	case "maturity":
		less = func(a, b model.Record) bool {
			return schedule.EffectiveMaturity(a).Before(schedule.EffectiveMaturity(b))
		}
	default:
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		if descending {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}
