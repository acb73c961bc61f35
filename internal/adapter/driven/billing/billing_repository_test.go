package billing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *types.Config {
	return &types.Config{
		CSVDetailedSeparator: ",",
		CSVEncoding:          "utf-8",
		DateFormat:           "01/02/2006",
	}
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Detail_Enrollment_88991105_202405_en.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLineItems(t *testing.T) {
	path := writeSource(t,
		"BillingAccountId,BillingAccountName,Date,MeterCategory,Cost,UnitPrice,Tags,benefitName\n"+
			`1234,Contoso EA,05/02/2024,Virtual Machines,1.5,0.1,"{""CostCenter"":""42""}",SavingsPlan`+"\n"+
			"1234,Contoso EA,05/03/2024,Storage,0.25,,,\n")

	repo := NewBillingRepository(testConfig())
	items, err := repo.LoadLineItems(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1234", items[0].BillingAccountID)
	assert.Equal(t, "Contoso EA", items[0].BillingAccountName)
	assert.Equal(t, "Virtual Machines", items[0].MeterCategory)
	assert.InDelta(t, 1.5, items[0].Cost, 1e-9)
	assert.InDelta(t, 0.1, items[0].UnitPrice, 1e-9)
	assert.Equal(t, `{"CostCenter":"42"}`, items[0].Tags)
	assert.Equal(t, "SavingsPlan", items[0].BenefitName)
	assert.Equal(t, time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), items[0].ParsedDate)

	// Missing columns coerce to zero values.
	assert.InDelta(t, 0.0, items[1].UnitPrice, 1e-9)
	assert.Equal(t, "", items[1].Tags)
	assert.Equal(t, "", items[1].SubscriptionName)
}

func TestLoadLineItemsStripsByteOrderMark(t *testing.T) {
	path := writeSource(t, "\ufeffBillingAccountId,Cost\n1234,2\n")

	repo := NewBillingRepository(testConfig())
	items, err := repo.LoadLineItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1234", items[0].BillingAccountID)
}

func TestLoadLineItemsCustomSeparator(t *testing.T) {
	cfg := testConfig()
	cfg.CSVDetailedSeparator = ";"
	path := writeSource(t, "BillingAccountId;MeterCategory;Cost\n1234;Storage;0.5\n")

	repo := NewBillingRepository(cfg)
	items, err := repo.LoadLineItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Storage", items[0].MeterCategory)
	assert.InDelta(t, 0.5, items[0].Cost, 1e-9)
}

func TestLoadLineItemsLatinEncoding(t *testing.T) {
	cfg := testConfig()
	cfg.CSVEncoding = "ISO-8859-1"
	// 0xE9 is é in latin-1.
	content := append([]byte("BillingAccountId,AccountName,Cost\n1234,D"), 0xE9)
	content = append(content, []byte("mo,1\n")...)
	path := writeSource(t, string(content))

	repo := NewBillingRepository(cfg)
	items, err := repo.LoadLineItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Démo", items[0].AccountName)
}

func TestLoadLineItemsUnparseableDate(t *testing.T) {
	path := writeSource(t, "BillingAccountId,Date,Cost\n1234,not-a-date,1\n")

	repo := NewBillingRepository(testConfig())
	items, err := repo.LoadLineItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].ParsedDate.IsZero())
	assert.Equal(t, "not-a-date", items[0].Date)
}

func TestSourceExists(t *testing.T) {
	path := writeSource(t, "BillingAccountId\n")
	repo := NewBillingRepository(testConfig())

	assert.True(t, repo.SourceExists(path))
	assert.False(t, repo.SourceExists(filepath.Join(t.TempDir(), "absent.csv")))
	assert.False(t, repo.SourceExists(filepath.Dir(path)))
}
