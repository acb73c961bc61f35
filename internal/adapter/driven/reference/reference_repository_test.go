package reference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReferenceFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.csv")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestUpdateBillingAccountsAppendsNovelOnly(t *testing.T) {
	path := writeReferenceFile(t,
		"BillingAccountId;BillingAccountName",
		"1234;Contoso EA",
	)
	repo := NewReferenceRepository()

	appended, err := repo.UpdateBillingAccounts(path, []entity.BillingAccountRef{
		{ID: "1234", Name: "Contoso EA"},
		{ID: "5678", Name: "Fabrikam MCA"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, appended)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, "BillingAccountId;BillingAccountName", lines[0])
	assert.Equal(t, "1234;Contoso EA", lines[1])
	assert.Equal(t, "5678;Fabrikam MCA", lines[2])
}

func TestUpdateBillingAccountsIsIdempotent(t *testing.T) {
	path := writeReferenceFile(t, "BillingAccountId;BillingAccountName")
	repo := NewReferenceRepository()

	batch := []entity.BillingAccountRef{{ID: "1234", Name: "Contoso EA"}}

	appended, err := repo.UpdateBillingAccounts(path, batch)
	require.NoError(t, err)
	assert.Equal(t, 1, appended)

	appended, err = repo.UpdateBillingAccounts(path, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, appended)

	assert.Len(t, readLines(t, path), 2)
}

func TestUpdateBillingAccountsFirstObservedNameWins(t *testing.T) {
	path := writeReferenceFile(t, "BillingAccountId;BillingAccountName")
	repo := NewReferenceRepository()

	appended, err := repo.UpdateBillingAccounts(path, []entity.BillingAccountRef{
		{ID: "1234", Name: "Contoso EA"},
		{ID: "1234", Name: "Contoso EA (renamed)"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, appended)

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "1234;Contoso EA", lines[1])
}

func TestUpdateBillingProfiles(t *testing.T) {
	path := writeReferenceFile(t,
		"BillingProfileId;BillingProfileName;BillingCurrency",
	)
	repo := NewReferenceRepository()

	appended, err := repo.UpdateBillingProfiles(path, []entity.BillingProfileRef{
		{ID: "P-1", Name: "Contoso IT", Currency: "EUR"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, appended)

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "P-1;Contoso IT;EUR", lines[1])
}

func TestUpdateBillingAccountsMissingFile(t *testing.T) {
	repo := NewReferenceRepository()

	_, err := repo.UpdateBillingAccounts(
		filepath.Join(t.TempDir(), "absent.csv"),
		[]entity.BillingAccountRef{{ID: "1234"}},
	)
	assert.Error(t, err)
}
