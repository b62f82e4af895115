package outwriter

import (
	"bytes"
	"testing"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDimensionName(t *testing.T) {
	assert.Equal(t, "Activity", displayDimensionName(schema.ActivityDim))
	assert.Equal(t, "Collaboration", displayDimensionName(schema.CollaborationDim))
	assert.Equal(t, "Stack Diversity", displayDimensionName(schema.StackDiversityDim))
	assert.Equal(t, "AI Savviness", displayDimensionName(schema.AISavvinessDim))
	assert.Equal(t, "MYSTERY", displayDimensionName(schema.Dimension("mystery")))
}

func TestDisplayBucketName(t *testing.T) {
	assert.Equal(t, "Heavy (60-100%)", displayBucketName(schema.HeavyBucket))
	assert.Equal(t, "Moderate (30-60%)", displayBucketName(schema.ModerateBucket))
	assert.Equal(t, "Light (10-30%)", displayBucketName(schema.LightBucket))
	assert.Equal(t, "Minimal (0-10%)", displayBucketName(schema.MinimalBucket))
}

func TestFormatArchetypeFormula(t *testing.T) {
	t.Run("positive weights only", func(t *testing.T) {
		formula := formatArchetypeFormula(map[schema.Dimension]float64{
			schema.ActivityDim:      0.6,
			schema.CollaborationDim: 0.4,
		})
		assert.Equal(t, "0.60*activity + 0.40*collaboration", formula)
	})

	t.Run("penalty trails positives", func(t *testing.T) {
		formula := formatArchetypeFormula(map[schema.Dimension]float64{
			schema.AISavvinessDim:    0.4,
			schema.ActivityDim:       0.35,
			schema.CollaborationDim:  -0.2,
			schema.StackDiversityDim: 0.05,
		})
		assert.Equal(t, "0.35*activity + 0.05*stack_diversity + 0.40*ai_savviness - 0.20*collaboration", formula)
	})

	t.Run("empty weights", func(t *testing.T) {
		assert.Equal(t, "", formatArchetypeFormula(nil))
	})
}

func TestGetMaxTableDescWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow terminal clamps to minimum", 50, 20},
		{"medium terminal", 90, 45},
		{"wide terminal clamps to maximum", 200, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, getMaxTableDescWidth(cfg))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, buf.String())
	assert.Contains(t, buf.String(), "\n", "Encoder should terminate with a newline")
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}
