package property

import (
	"fmt"

	"immoplace/internal/pkg/validator"
)

// Store is the read-only in-memory catalog. It is built once by the
// composition root and never mutated, so it is safe for concurrent use.
type Store struct {
	properties []Property
	index      map[string]int
	agents     []Agent
	agentIndex map[string]int
}

// NewStore validates the records and keeps a private copy in the given order.
func NewStore(properties []Property) (*Store, error) {
	s := &Store{
		properties: make([]Property, 0, len(properties)),
		index:      make(map[string]int, len(properties)),
		agentIndex: map[string]int{},
	}

	for _, p := range properties {
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate property id %q", ErrInvalidCatalog, p.ID)
		}
		if fields := validator.Validate(p); fields != nil {
			return nil, &ValidationError{
				Err:    fmt.Errorf("%w: property %q", ErrInvalidCatalog, p.ID),
				Fields: fields,
			}
		}

		s.index[p.ID] = len(s.properties)
		s.properties = append(s.properties, p.clone())

		if i, seen := s.agentIndex[p.Agent.ID]; seen {
			if s.agents[i] != p.Agent {
				return nil, fmt.Errorf("%w: agent %q has conflicting records (property %q)", ErrInvalidCatalog, p.Agent.ID, p.ID)
			}
			continue
		}
		s.agentIndex[p.Agent.ID] = len(s.agents)
		s.agents = append(s.agents, p.Agent)
	}

	return s, nil
}

// List returns the whole catalog in insertion order.
func (s *Store) List() []Property {
	out := make([]Property, len(s.properties))
	for i, p := range s.properties {
		out[i] = p.clone()
	}
	return out
}

// Get looks a property up by id; ok is false when the id is unknown.
func (s *Store) Get(id string) (Property, bool) {
	i, ok := s.index[id]
	if !ok {
		return Property{}, false
	}
	return s.properties[i].clone(), true
}

func (s *Store) Len() int {
	return len(s.properties)
}

// Agents returns the distinct agents in order of first appearance.
func (s *Store) Agents() []Agent {
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

func (s *Store) Agent(id string) (Agent, bool) {
	i, ok := s.agentIndex[id]
	if !ok {
		return Agent{}, false
	}
	return s.agents[i], true
}

// ByAgent returns the properties listed by one agent, in catalog order.
func (s *Store) ByAgent(agentID string) []Property {
	var out []Property
	for _, p := range s.properties {
		if p.Agent.ID == agentID {
			out = append(out, p.clone())
		}
	}
	return out
}
