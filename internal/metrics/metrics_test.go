package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, APICallsTotal)
	assert.NotNil(t, APIErrorsTotal)
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, DailyUsage)
	assert.NotNil(t, DailyLimitHits)
}
