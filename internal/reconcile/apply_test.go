package reconcile

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdkeep-dev/fdkeep/internal/model"
)

func testApplier() *Applier {
	seq := 0
	return &Applier{
		Now: func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string {
			seq++
			return fmt.Sprintf("new-%d", seq)
		},
	}
}

func TestApply_NewOnly(t *testing.T) {
	existing := []model.Record{existingRecord()}
	holders := []string{"Ram Sharma"}

	fresh := incomingRow()
	fresh.AccountHolder = "Sita Sharma"
	changed := incomingRow()
	changed.Rate = dec("9.5")

	a := Analyze([]model.Incoming{fresh, incomingRow(), changed}, existing)
	require.Len(t, a.New, 1)
	require.Len(t, a.Duplicates, 1)
	require.Len(t, a.Updated, 1)

	out, err := testApplier().Apply(a, StrategyNewOnly, existing, holders)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 0, out.Updated)
	assert.Equal(t, 1, out.Skipped)
	assert.Equal(t, 2, out.Total)

	// Previously existing records are untouched, updates ignored.
	assert.Equal(t, existingRecord(), out.Records[0])

	added := out.Records[1]
	assert.Equal(t, "new-1", added.ID)
	assert.Equal(t, "Sita Sharma", added.AccountHolder)
	assert.Equal(t, model.MustParseDate("2025-01-15"), added.MaturityDate)
	assert.False(t, added.CreatedAt.IsZero())

	// The new holder is registered alongside the existing one.
	assert.Equal(t, []string{"Ram Sharma", "Sita Sharma"}, out.Holders)
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	existing := []model.Record{existingRecord()}
	holders := []string{"Ram Sharma"}

	in := incomingRow()
	in.Rate = dec("9.5")
	a := Analyze([]model.Incoming{in}, existing)

	_, err := testApplier().Apply(a, StrategyNewAndUpdate, existing, holders)
	require.NoError(t, err)

	// Classification and apply never touch the caller's slices.
	assert.Equal(t, existingRecord(), existing[0])
	assert.Equal(t, []string{"Ram Sharma"}, holders)
}

func TestApply_NewAndUpdate(t *testing.T) {
	existing := []model.Record{existingRecord()}
	existing[0].CreatedAt = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	in := incomingRow()
	in.Rate = dec("9.5")
	in.Duration = 24

	a := Analyze([]model.Incoming{in}, existing)
	require.Len(t, a.Updated, 1)

	out, err := testApplier().Apply(a, StrategyNewAndUpdate, existing, []string{"Ram Sharma"})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, 1, out.Total)

	got := out.Records[0]
	// Identity and provenance survive the update.
	assert.Equal(t, "fd-1", got.ID)
	assert.Equal(t, existing[0].CreatedAt, got.CreatedAt)
	// Mutable fields follow the incoming row; maturity is recomputed from
	// the incoming term since none was supplied.
	assert.True(t, got.Rate.Equal(dec("9.5")))
	assert.Equal(t, 24, got.Duration)
	assert.Equal(t, model.MustParseDate("2026-01-15"), got.MaturityDate)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestApply_NewAndUpdate_ExplicitMaturityWins(t *testing.T) {
	existing := []model.Record{existingRecord()}

	in := incomingRow()
	in.Rate = dec("9.5")
	in.MaturityDate = model.MustParseDate("2025-03-01")

	a := Analyze([]model.Incoming{in}, existing)
	out, err := testApplier().Apply(a, StrategyNewAndUpdate, existing, nil)
	require.NoError(t, err)
	assert.Equal(t, model.MustParseDate("2025-03-01"), out.Records[0].MaturityDate)
}

func TestApply_ImportAll(t *testing.T) {
	existing := []model.Record{existingRecord()}

	fresh := incomingRow()
	fresh.AccountHolder = "Sita Sharma"
	changed := incomingRow()
	changed.Rate = dec("9.5")

	a := Analyze([]model.Incoming{fresh, incomingRow(), changed}, existing)

	out, err := testApplier().Apply(a, StrategyImportAll, existing, []string{"Ram Sharma"})
	require.NoError(t, err)

	// Everything appended as brand new, nothing skipped or updated.
	assert.Equal(t, 3, out.Added)
	assert.Equal(t, 0, out.Updated)
	assert.Equal(t, 0, out.Skipped)
	assert.Equal(t, 4, out.Total)

	ids := make(map[string]bool)
	for _, r := range out.Records {
		assert.False(t, ids[r.ID])
		ids[r.ID] = true
	}
}

func TestApply_InvalidCountCarries(t *testing.T) {
	a := Analyze([]model.Incoming{{}}, nil)
	out, err := testApplier().Apply(a, StrategyNewOnly, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Invalid)
	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 0, out.Total)
}

func TestApply_UnknownStrategy(t *testing.T) {
	a := Analyze(nil, nil)
	_, err := testApplier().Apply(a, Strategy("merge"), nil, nil)
	assert.Error(t, err)
}

func TestApply_Defaults(t *testing.T) {
	in := incomingRow()
	in.DurationUnit = ""
	in.CertificateStatus = ""

	a := Analyze([]model.Incoming{in}, nil)
	out, err := testApplier().Apply(a, StrategyNewOnly, nil, nil)
	require.NoError(t, err)

	got := out.Records[0]
	assert.Equal(t, model.UnitMonths, got.DurationUnit)
	assert.Equal(t, model.CertificateNotObtained, got.CertificateStatus)
}
