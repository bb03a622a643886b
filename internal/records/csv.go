package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

// Header is the CSV exchange header. Import matches columns by name,
// case-insensitively, so files with reordered or differently cased headers
// still load.
const Header = "accountholder,bank,amount,duration,unit,rate,startdate,maturitydate,certificatestatus,notes"

const (
	colHolder    = "accountholder"
	colBank      = "bank"
	colAmount    = "amount"
	colDuration  = "duration"
	colUnit      = "unit"
	colRate      = "rate"
	colStart     = "startdate"
	colMaturity  = "maturitydate"
	colCert      = "certificatestatus"
	colNotes     = "notes"
	defaultTermM = 12
)

// WriteCSV exports records in the exchange format. Maturity dates are
// derived for records that never stored one, so re-importing a file always
// carries explicit dates.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		row := []string{
			r.AccountHolder,
			r.Bank,
			r.Amount.String(),
			strconv.Itoa(r.Duration),
			string(r.DurationUnit),
			r.Rate.String(),
			r.StartDate.String(),
			schedule.EffectiveMaturity(r).String(),
			string(r.CertificateStatus),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadCSV parses the exchange format into incoming rows for the
// reconciler. Syntax is the CSV reader's problem; this function only maps
// columns and types fields. Unparseable numbers and dates are left at zero
// so the reconciler can bucket the row as invalid with a reason instead of
// aborting the batch.
func ReadCSV(r io.Reader) ([]model.Incoming, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index[colHolder]; !ok {
		return nil, fmt.Errorf("missing %q column in header", colHolder)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var incoming []model.Incoming
	for _, row := range rows[1:] {
		in := model.Incoming{
			AccountHolder:     field(row, colHolder),
			Bank:              field(row, colBank),
			DurationUnit:      model.ParseDurationUnit(field(row, colUnit)),
			CertificateStatus: model.CertificateStatus(field(row, colCert)),
			Notes:             field(row, colNotes),
		}
		if in.CertificateStatus == "" {
			in.CertificateStatus = model.CertificateNotObtained
		}

		if v, err := decimal.NewFromString(field(row, colAmount)); err == nil {
			in.Amount = v
		}
		if v, err := decimal.NewFromString(field(row, colRate)); err == nil {
			in.Rate = v
		}
		in.Duration = defaultTermM
		if v, err := strconv.Atoi(field(row, colDuration)); err == nil && v > 0 {
			in.Duration = v
		}
		if d, err := model.ParseDate(field(row, colStart)); err == nil {
			in.StartDate = d
		}
		if d, err := model.ParseDate(field(row, colMaturity)); err == nil {
			in.MaturityDate = d
		}

		incoming = append(incoming, in)
	}
	return incoming, nil
}
