package shop

import (
	"testing"

	"go-ecommerce-console/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsKeepSeparateCarts(t *testing.T) {
	catalog := newTestCatalog(t)
	sessions := NewSessions(3)

	a := sessions.Start()
	b := sessions.Start()
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, sessions.Len())

	milo, err := catalog.Lookup("j1k2l3")
	require.NoError(t, err)
	require.NoError(t, a.WithCart(func(cart *models.Cart) error {
		return cart.AddLine(milo, 4)
	}))

	got, ok := sessions.Get(b.ID)
	require.True(t, ok)
	_ = got.WithCart(func(cart *models.Cart) error {
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 3, cart.Capacity())
		return nil
	})

	sessions.End(a.ID)
	_, ok = sessions.Get(a.ID)
	assert.False(t, ok)
}
