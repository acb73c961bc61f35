package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodToken(t *testing.T) {
	token, err := PeriodToken("Detail_Enrollment_88991105_202405_en.csv")
	require.NoError(t, err)
	assert.Equal(t, "202405", token)
}

func TestPeriodTokenErrors(t *testing.T) {
	tests := map[string]string{
		"too few segments":  "Detail_202405.csv",
		"non-numeric token": "Detail_Enrollment_88991105_latest_en.csv",
		"invalid month":     "Detail_Enrollment_88991105_202413_en.csv",
	}

	for name, fileName := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := PeriodToken(fileName)
			assert.Error(t, err)
		})
	}
}

func TestPreviousPeriodFileName(t *testing.T) {
	tests := map[string]struct {
		fileName string
		expected string
	}{
		"mid-year": {
			fileName: "Detail_Enrollment_88991105_202405_en.csv",
			expected: "Detail_Enrollment_88991105_202404_en.csv",
		},
		"year boundary": {
			fileName: "Detail_Enrollment_88991105_202401_en.csv",
			expected: "Detail_Enrollment_88991105_202312_en.csv",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			previous, err := PreviousPeriodFileName(tt.fileName)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, previous)
		})
	}
}

func TestSynthesisFileName(t *testing.T) {
	name := SynthesisFileName("Detail_Enrollment_88991105_202405_en.csv", "Detail", "Daily")
	assert.Equal(t, "Daily_Enrollment_88991105_202405_en.csv", name)

	name = SynthesisFileName("Detail_Enrollment_88991105_202405_en.csv", "Detail", "Monthly")
	assert.Equal(t, "Monthly_Enrollment_88991105_202405_en.csv", name)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00h:00m:05s", formatDuration(5*time.Second))
	assert.Equal(t, "01h:02m:03s", formatDuration(time.Hour+2*time.Minute+3*time.Second))
}
