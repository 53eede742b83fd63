package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		score    int
		total    int
		expected int
	}{
		{"СемьИзДесяти", 7, 10, 70},
		{"ВсеПравильно", 10, 10, 100},
		{"НиОдного", 0, 10, 0},
		{"Округление", 2, 3, 67},
		{"ОкруглениеВниз", 1, 3, 33},
		{"НольВопросов", 5, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Percentage(tc.score, tc.total))
		})
	}
}

func TestGrade(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{0, "D"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Grade(tc.percentage), "процент %d", tc.percentage)
	}
}
