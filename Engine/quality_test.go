package Engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "opening checklist", NormalizeTitle("  Opening   Checklist "))
	assert.Equal(t, "cash register reconciliation", NormalizeTitle("Cash Register\tReconciliation"))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestQualitySetContains(t *testing.T) {
	set := DefaultQualitySet()
	assert.True(t, set.Contains("Opening Checklist"))
	assert.True(t, set.Contains("  temperature   LOG check"))
	assert.False(t, set.Contains("Sweep the floor"))
}

func TestCustomQualitySet(t *testing.T) {
	set := NewQualitySet([]string{"Safe Count"})
	assert.True(t, set.Contains("safe count"))
	assert.False(t, set.Contains("Opening Checklist"))
}

func TestZeroQualitySet(t *testing.T) {
	var set QualitySet
	assert.False(t, set.Contains("anything"))
}
