package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		times      []time.Duration
		mostRecent *time.Duration
		second     *time.Duration
		fastest    *time.Duration
	}{
		{
			name: "no times",
		},
		{
			name:       "single time",
			times:      []time.Duration{ms(5000)},
			mostRecent: durPtr(ms(5000)),
			fastest:    durPtr(ms(5000)),
		},
		{
			name:       "two times",
			times:      []time.Duration{ms(12340), ms(11000)},
			mostRecent: durPtr(ms(11000)),
			second:     durPtr(ms(12340)),
			fastest:    durPtr(ms(11000)),
		},
		{
			name:       "fastest in the middle",
			times:      []time.Duration{ms(9000), ms(4000), ms(7000), ms(8000)},
			mostRecent: durPtr(ms(8000)),
			second:     durPtr(ms(7000)),
			fastest:    durPtr(ms(4000)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.times)
			assert.Equal(t, tt.mostRecent, s.MostRecent)
			assert.Equal(t, tt.second, s.SecondMostRecent)
			assert.Equal(t, tt.fastest, s.Fastest)
		})
	}
}

func TestSummaryForMatchesPersonSummary(t *testing.T) {
	p := Person{ID: "p1", Name: "Alice", Times: []time.Duration{ms(3000), ms(2000)}}

	assert.Equal(t, SummaryFor(p), p.Summary())
}

func TestSummarizeDoesNotAliasInput(t *testing.T) {
	times := []time.Duration{ms(1000), ms(2000)}
	s := Summarize(times)
	require.NotNil(t, s.MostRecent)

	times[1] = time.Hour

	assert.Equal(t, ms(2000), *s.MostRecent)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{ms(12340), "00:12:34"},
		{ms(59999), "00:59:99"},
		{ms(61050), "01:01:05"},
		{61 * time.Minute, "61:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func durPtr(d time.Duration) *time.Duration {
	return &d
}
