package zint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSegmentsRejectsEmpty(t *testing.T) {
	plan := PlanSegments(nil, true)
	require.True(t, plan.Diagnostic.IsError())
	assert.Equal(t, ErrSegmentsUnsupported, plan.Diagnostic.Code)
}

func TestPlanSegmentsRejectsMultiWhenUnsupported(t *testing.T) {
	plan := PlanSegments([]Segment{{Source: []byte("a")}, {ECI: 3, Source: []byte("b")}}, false)
	require.True(t, plan.Diagnostic.IsError())
}

func TestPlanSegmentsRejectsConsecutiveRepeatedECI(t *testing.T) {
	plan := PlanSegments([]Segment{{ECI: 3, Source: []byte("a")}, {ECI: 3, Source: []byte("b")}}, true)
	require.True(t, plan.Diagnostic.IsError())
}

func TestPlanSegmentsRejectsOversizedTotal(t *testing.T) {
	plan := PlanSegments([]Segment{{Source: []byte(strings.Repeat("x", maxTotalBytes+1))}}, true)
	require.True(t, plan.Diagnostic.IsError())
}

func TestAutoSelectECINarrowsNonASCII(t *testing.T) {
	plan := PlanSegments([]Segment{{Source: []byte("héllo")}}, true)
	require.False(t, plan.Diagnostic.IsError())
	assert.Equal(t, Warn, plan.Diagnostic.Severity)
	assert.Equal(t, WarnImplicitECI, plan.Diagnostic.Code)
	assert.Equal(t, uint32(3), plan.Segments[0].ECI)
}

func TestAutoSelectECILeavesASCIIUntouched(t *testing.T) {
	plan := PlanSegments([]Segment{{Source: []byte("hello")}}, true)
	require.False(t, plan.Diagnostic.IsError())
	assert.Equal(t, OK, plan.Diagnostic.Severity)
	assert.Equal(t, uint32(0), plan.Segments[0].ECI)
}
