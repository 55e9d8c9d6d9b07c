package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortAndInfo(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "dev"
	assert.Equal(t, "tempo dev", Short())
	assert.Contains(t, Info(), runtime.GOOS)

	Version, Commit, Date = "1.2.0", "abc123", "2025-03-05"
	assert.Equal(t, "tempo 1.2.0", Short())
	assert.Equal(t, "tempo 1.2.0 (commit: abc123, built: 2025-03-05, "+runtime.GOOS+"/"+runtime.GOARCH+")", Info())
}
