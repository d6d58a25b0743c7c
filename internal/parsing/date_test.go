package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "excel serial", input: "45000", want: "2023-03-15"},
		{name: "unix seconds", input: "1700000000", want: "2023-11-14"},
		{name: "iso date", input: "2024-05-10", want: "2024-05-10"},
		{name: "iso datetime", input: "2024-05-10T08:30:00", want: "2024-05-10"},
		{name: "br slashes", input: "15/03/2024", want: "2024-03-15"},
		{name: "br dashes", input: "15-03-2024", want: "2024-03-15"},
		{name: "two digit year", input: "15/03/24", want: "2024-03-15"},
		{name: "month year only", input: "03/2024", want: "2024-03-01"},
		{name: "space datetime", input: "2024-05-10 13:45:00", want: "2024-05-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestDateRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "  "},
		{name: "free text", input: "pendente"},
		{name: "serial below range", input: "10000"},
		{name: "serial above range but not unix", input: "99999"},
		{name: "installation number", input: "105301957"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Date(tt.input))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05-03-2024", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))

	var zero time.Time
	assert.Equal(t, "", FormatDate(&zero))
}

func TestDateSerialRoundTrip(t *testing.T) {
	// 2023-01-01 is day serial 44927 in the 1900 epoch.
	got := Date("44927")
	require.NotNil(t, got)
	assert.Equal(t, "2023-01-01", got.Format("2006-01-02"))
}
