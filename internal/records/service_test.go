package records

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdkeep-dev/fdkeep/internal/interest"
	"github.com/fdkeep-dev/fdkeep/internal/model"
	"github.com/fdkeep-dev/fdkeep/internal/schedule"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testService(records ...model.Record) *Service {
	s := NewService(records)
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func sampleParams() AddParams {
	return AddParams{
		AccountHolder: "Ram Sharma",
		Bank:          "Nabil Bank Limited",
		Amount:        dec("100000"),
		Duration:      12,
		DurationUnit:  model.UnitMonths,
		Rate:          dec("9.25"),
		StartDate:     model.MustParseDate("2024-01-15"),
	}
}

func TestAdd(t *testing.T) {
	s := testService()
	rec, err := s.Add(sampleParams())
	require.NoError(t, err)

	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, model.MustParseDate("2025-01-15"), rec.MaturityDate)
	assert.Equal(t, model.CertificateNotObtained, rec.CertificateStatus)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, 1, s.Len())
}

func TestAdd_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AddParams)
	}{
		{"empty holder", func(p *AddParams) { p.AccountHolder = " " }},
		{"empty bank", func(p *AddParams) { p.Bank = "" }},
		{"zero amount", func(p *AddParams) { p.Amount = decimal.Zero }},
		{"negative amount", func(p *AddParams) { p.Amount = dec("-1") }},
		{"zero duration", func(p *AddParams) { p.Duration = 0 }},
		{"rate above 100", func(p *AddParams) { p.Rate = dec("120") }},
		{"negative rate", func(p *AddParams) { p.Rate = dec("-1") }},
		{"no start date", func(p *AddParams) { p.StartDate = model.Date{} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := sampleParams()
			c.mutate(&p)
			_, err := testService().Add(p)
			assert.Error(t, err)
		})
	}
}

func TestAdd_ExplicitMaturityKept(t *testing.T) {
	p := sampleParams()
	p.MaturityDate = model.MustParseDate("2025-02-01")
	rec, err := testService().Add(p)
	require.NoError(t, err)
	assert.Equal(t, model.MustParseDate("2025-02-01"), rec.MaturityDate)
}

func TestGet_Prefix(t *testing.T) {
	s := testService()
	_, err := s.Add(sampleParams())
	require.NoError(t, err)

	got, err := s.Get("id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)

	got, err = s.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)

	_, err = s.Get("zzz")
	assert.Error(t, err)

	_, err = s.Add(sampleParams())
	require.NoError(t, err)
	_, err = s.Get("id")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestDeleteByHolder_Cascades(t *testing.T) {
	s := testService()
	for i := 0; i < 3; i++ {
		_, err := s.Add(sampleParams())
		require.NoError(t, err)
	}
	other := sampleParams()
	other.AccountHolder = "Sita Sharma"
	_, err := s.Add(other)
	require.NoError(t, err)

	removed := s.DeleteByHolder("Ram Sharma")
	assert.Equal(t, 3, removed)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "Sita Sharma", s.All()[0].AccountHolder)
}

func TestRenew(t *testing.T) {
	s := testService()
	orig, err := s.Add(sampleParams())
	require.NoError(t, err)

	renewed, err := s.Renew(orig.ID, RenewParams{Rate: dec("9.75")})
	require.NoError(t, err)

	// Starts where the original matured, keeps the term, takes the new
	// rate, principal unchanged without reinvestment.
	assert.Equal(t, orig.MaturityDate, renewed.StartDate)
	assert.Equal(t, model.MustParseDate("2026-01-15"), renewed.MaturityDate)
	assert.True(t, renewed.Amount.Equal(orig.Amount))
	assert.True(t, renewed.Rate.Equal(dec("9.75")))
	assert.Equal(t, "Renewal of FD from 2024-01-15", renewed.Notes)
	assert.NotEqual(t, orig.ID, renewed.ID)
	assert.Equal(t, 2, s.Len())
}

func TestRenew_Reinvest(t *testing.T) {
	s := testService()
	orig, err := s.Add(sampleParams())
	require.NoError(t, err)

	renewed, err := s.Renew(orig.ID, RenewParams{Reinvest: true})
	require.NoError(t, err)

	want := orig.Amount.Add(interest.ForRecord(orig))
	assert.True(t, renewed.Amount.Equal(want), "got %s want %s", renewed.Amount, want)
	// Rate defaults to the original's.
	assert.True(t, renewed.Rate.Equal(orig.Rate))
}

func TestDuplicateLast(t *testing.T) {
	s := testService()
	orig, err := s.Add(sampleParams())
	require.NoError(t, err)

	dup, err := s.DuplicateLast()
	require.NoError(t, err)
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, orig.AccountHolder, dup.AccountHolder)
	assert.True(t, orig.Amount.Equal(dup.Amount))
	assert.Equal(t, 2, s.Len())

	_, err = testService().DuplicateLast()
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	recs := []model.Record{
		{AccountHolder: "Ram Sharma", Bank: "Nabil Bank Limited", Amount: dec("100000")},
		{AccountHolder: "Sita Sharma", Bank: "Everest Bank Limited", Amount: dec("250000")},
	}

	assert.Len(t, Search(recs, "nabil"), 1)
	assert.Len(t, Search(recs, "sharma"), 2)
	assert.Len(t, Search(recs, "250000"), 1)
	assert.Len(t, Search(recs, ""), 2)
	assert.Empty(t, Search(recs, "citizens"))
}

func TestSearch_ResultIsIndependent(t *testing.T) {
	recs := []model.Record{
		{AccountHolder: "Ram Sharma", Bank: "Nabil Bank Limited", Amount: dec("100000")},
		{AccountHolder: "Sita Sharma", Bank: "Everest Bank Limited", Amount: dec("250000")},
	}

	// Reordering a search result must not reorder the source slice.
	got := Search(recs, "")
	SortBy(got, "amount", true)
	assert.Equal(t, "Ram Sharma", recs[0].AccountHolder)
	assert.Equal(t, "Sita Sharma", got[0].AccountHolder)
}

func TestFilterAndSort(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recs := []model.Record{
		{ID: "a", Amount: dec("300"), MaturityDate: model.MustParseDate("2024-06-05")},
		{ID: "b", Amount: dec("100"), MaturityDate: model.MustParseDate("2025-01-01")},
		{ID: "c", Amount: dec("200"), MaturityDate: model.MustParseDate("2024-05-01")},
	}

	expiring := FilterByStatus(recs, schedule.StatusExpiringSoon, now)
	require.Len(t, expiring, 1)
	assert.Equal(t, "a", expiring[0].ID)

	matured := FilterByStatus(recs, schedule.StatusMatured, now)
	require.Len(t, matured, 1)
	assert.Equal(t, "c", matured[0].ID)

	SortBy(recs, "amount", false)
	assert.Equal(t, []string{"b", "c", "a"}, []string{recs[0].ID, recs[1].ID, recs[2].ID})

	SortBy(recs, "maturity", true)
	assert.Equal(t, "b", recs[0].ID)
}
