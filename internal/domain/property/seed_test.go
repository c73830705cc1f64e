package property

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := seedCatalog(t)

	villa := catalog[3]
	assert.Equal(t, "4", villa.ID)
	assert.Equal(t, CategoryVilla, villa.Category)
	assert.Equal(t, TransactionSale, villa.Type)
	assert.Equal(t, "Nice", villa.Location.City)
	assert.Equal(t, "Sophie Martin", villa.Agent.Name)
	assert.Equal(t, AgentAgency, villa.Agent.Type)
	assert.Equal(t, 567, villa.Views)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), villa.UpdatedAt)
	assert.Len(t, villa.Images, 5)

	studio := catalog[2]
	require.NotNil(t, studio.Features.Elevator)
	assert.False(t, *studio.Features.Elevator)
	assert.Nil(t, studio.Features.Garden)
	assert.Equal(t, 0, studio.Features.Bedrooms)

	individual := catalog[1].Agent
	assert.Equal(t, AgentIndividual, individual.Type)
	assert.Empty(t, individual.Company)
}

func TestParseCatalog_UnknownAgent(t *testing.T) {
	doc := []byte(`
agents: []
properties:
  - id: "1"
    title: Loft
    agent: "7"
    created_at: "2024-01-01"
    updated_at: "2024-01-01"
`)
	_, err := ParseCatalog(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown agent")
}

func TestParseCatalog_DuplicateAgent(t *testing.T) {
	doc := []byte(`
agents:
  - id: a
    name: First
    type: individual
  - id: a
    name: Second
    type: agency
properties: []
`)
	_, err := ParseCatalog(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestParseCatalog_Timestamps(t *testing.T) {
	doc := []byte(`
agents:
  - id: a
    name: Agent
    type: individual
properties:
  - id: "1"
    title: Loft
    agent: a
    created_at: "2024-02-01T10:30:00Z"
    updated_at: "2024-02-03"
`)
	catalog, err := ParseCatalog(doc)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	assert.Equal(t, time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC), catalog[0].CreatedAt)
	assert.NotNil(t, catalog[0].Images)

	bad := []byte(`
agents:
  - id: a
properties:
  - id: "1"
    agent: a
    created_at: "yesterday"
    updated_at: "2024-02-03"
`)
	_, err = ParseCatalog(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ParseCatalog([]byte("properties: [unclosed"))
	require.Error(t, err)
}
