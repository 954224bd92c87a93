package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glow/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:203.0.113.7:curl/8.0", shared.BuildCacheKey("limiter", "203.0.113.7", "curl/8.0"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
	assert.Equal(t, "", shared.BuildCacheKey())
}
