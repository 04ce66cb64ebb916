package dashboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-demo/internal/domain/entity"
	"dashboard-demo/internal/usecase/dashboard"
)

type relativeURLs struct{}

func (relativeURLs) PublicURL(p string) string { return p }

func TestValidate_ShippedDataset(t *testing.T) {
	p, w := newTestProvider(t)

	require.NoError(t, p.Validate())
	assert.Empty(t, w.delays, "Validate must not spend simulated latency")
}

func TestValidate_RejectsRelativeURLs(t *testing.T) {
	p := dashboard.NewProvider(relativeURLs{}, dashboard.Latency{})

	err := p.Validate()
	require.Error(t, err)

	var vErr *entity.ValidationError
	assert.True(t, errors.As(err, &vErr), "err = %v", err)
	assert.Contains(t, err.Error(), "quick_access \"qa-1\"")
	assert.Contains(t, err.Error(), "bookmarks \"bm-1\"")
	assert.Contains(t, err.Error(), "recent_activity \"ra-1\"")
}
