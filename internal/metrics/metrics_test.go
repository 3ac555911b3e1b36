package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(bookingStatus.WithLabelValues("accepted"))
	IncBookingStatus("accepted")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingStatus.WithLabelValues("accepted")))

	beforeErr := testutil.ToFloat64(uploads.WithLabelValues("portfolio", "error"))
	IncUpload("portfolio", false)
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(uploads.WithLabelValues("portfolio", "error")))
}
