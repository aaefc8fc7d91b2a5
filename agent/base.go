package agent

import (
	"fmt"

	"github.com/vidyasetu/agentcore/core"
)

// Base bundles the identity metadata every agent carries: name, description
// and declared capability set. Embed it in concrete agent implementations and
// supply a Process method to satisfy core.Agent. Base is immutable after
// construction, so it needs no locking.
type Base struct {
	name         string
	description  string
	capabilities []core.Capability
}

// NewBase constructs a Base with a generated description (override via
// NewBaseWithDescription).
func NewBase(name string, capabilities ...core.Capability) Base {
	return Base{
		name:         name,
		description:  fmt.Sprintf("Agent %s", name),
		capabilities: capabilities,
	}
}

// NewBaseWithDescription constructs a Base with an explicit description.
func NewBaseWithDescription(name, description string, capabilities ...core.Capability) Base {
	return Base{name: name, description: description, capabilities: capabilities}
}

// Name returns the registry key for this agent.
func (b *Base) Name() string { return b.name }

// Description returns a human-readable summary of the agent's purpose.
func (b *Base) Description() string { return b.description }

// Capabilities returns a copy of the declared capability set.
func (b *Base) Capabilities() []core.Capability {
	out := make([]core.Capability, len(b.capabilities))
	copy(out, b.capabilities)
	return out
}
