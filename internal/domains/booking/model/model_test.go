package model_test

import (
	"testing"

	"beauteefool/internal/domains/booking/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanBecome(t *testing.T) {
	assert.True(t, model.StatusPending.CanBecome(model.StatusConfirmed))
	assert.True(t, model.StatusPending.CanBecome(model.StatusCancelled))
	assert.False(t, model.StatusPending.CanBecome(model.StatusPending))
	assert.False(t, model.StatusConfirmed.CanBecome(model.StatusCancelled))
	assert.False(t, model.StatusCancelled.CanBecome(model.StatusConfirmed))
}

func TestConfirmationNumber(t *testing.T) {
	id := uuid.MustParse("0190a6e1-b2c3-7d4e-8f9a-0b1c2d3e4f50")

	assert.Equal(t, "BF-0190A6E1B2C37D4E8F9A0B1C2D3E4F50", model.ConfirmationNumber("BF", id))
}

func TestServiceLines_ValueScan(t *testing.T) {
	lines := model.ServiceLines{
		{ID: "hair-1", Name: "Haircut & Style", Category: "hair", Price: decimal.RequireFromString("65.50"), Duration: 60},
	}

	value, err := lines.Value()
	require.NoError(t, err)

	var scanned model.ServiceLines
	require.NoError(t, scanned.Scan(value))

	require.Len(t, scanned, 1)
	assert.Equal(t, "hair-1", scanned[0].ID)
	assert.True(t, decimal.RequireFromString("65.50").Equal(scanned[0].Price))
}

func TestServiceLines_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		wantLen int
		wantErr bool
	}{
		{name: "nil", src: nil},
		{name: "string", src: `[{"id":"spa-1","duration":60}]`, wantLen: 1},
		{name: "malformed", src: []byte(`{`), wantErr: true},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines model.ServiceLines
			err := lines.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, lines, tt.wantLen)
		})
	}
}

func TestServiceLines_NilValue(t *testing.T) {
	value, err := model.ServiceLines(nil).Value()

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}
