package usecase

import (
	"fmt"
	"strings"
	"time"
)

// periodTokenIndex is the underscore-delimited segment of a source file
// name that carries the YYYYMM period token, e.g.
// Detail_Enrollment_88991105_202405_en.csv.
const periodTokenIndex = 3

// PeriodToken extracts the YYYYMM period token embedded in a source file
// name.
func PeriodToken(fileName string) (string, error) {
	parts := strings.Split(fileName, "_")
	if len(parts) <= periodTokenIndex {
		return "", fmt.Errorf("file name %q carries no period token", fileName)
	}
	token := parts[periodTokenIndex]
	if _, err := time.Parse("200601", token); err != nil {
		return "", fmt.Errorf("file name %q carries an invalid period token %q", fileName, token)
	}
	return token, nil
}

// PreviousPeriodFileName derives the prior period's raw file name by
// decrementing the embedded period token one calendar month.
func PreviousPeriodFileName(fileName string) (string, error) {
	token, err := PeriodToken(fileName)
	if err != nil {
		return "", err
	}
	month, _ := time.Parse("200601", token)
	previous := month.AddDate(0, -1, 0).Format("200601")

	parts := strings.Split(fileName, "_")
	parts[periodTokenIndex] = previous
	return strings.Join(parts, "_"), nil
}

// SynthesisFileName substitutes the source-category token with the
// frequency word, preserving the embedded period token.
func SynthesisFileName(sourceName, category, frequency string) string {
	return strings.Replace(sourceName, category, frequency, 1)
}

// formatDuration renders an execution duration as 00h:00m:00s.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02dh:%02dm:%02ds", h, m, s)
}
