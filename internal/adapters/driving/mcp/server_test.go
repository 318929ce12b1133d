package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil catalog service returns error", func(t *testing.T) {
		ports := &Ports{Resolver: &mockResolverService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogService)
	})

	t.Run("nil resolver service returns error", func(t *testing.T) {
		ports := &Ports{Catalog: newMockCatalog()}
		assert.ErrorIs(t, ports.Validate(), ErrMissingResolverService)
	})

	t.Run("history is optional", func(t *testing.T) {
		ports := &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{},
			History:  &mockHistoryService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
