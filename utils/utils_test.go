package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFormatPKR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "PKR 0"},
		{100, "PKR 100"},
		{1000, "PKR 1,000"},
		{15000, "PKR 15,000"},
		{1234567, "PKR 1,234,567"},
		{-2500, "PKR -2,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPKR(tt.amount))
		})
	}
}

func TestInitLogger_Levels(t *testing.T) {
	InitLogger("debug")
	assert.Equal(t, logrus.DebugLevel, InfoLogger.GetLevel())
	assert.Equal(t, logrus.ErrorLevel, ErrorLogger.GetLevel())

	InitLogger("nonsense")
	assert.Equal(t, logrus.InfoLevel, InfoLogger.GetLevel())
}
