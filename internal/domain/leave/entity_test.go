package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestCovers(t *testing.T) {
	t.Parallel()

	req := Request{
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local),
	}

	assert.True(t, req.Covers(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)))
	assert.True(t, req.Covers(time.Date(2025, 3, 11, 23, 0, 0, 0, time.Local)))
	assert.True(t, req.Covers(time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)))
	assert.False(t, req.Covers(time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)))
	assert.False(t, req.Covers(time.Date(2025, 3, 13, 0, 0, 0, 0, time.Local)))
}
