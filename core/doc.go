// Package core defines the shared contracts of the agentcore framework: the
// Agent interface, task and result envelope types, agent metrics and lifecycle
// status, capability declarations and the ResultStore abstraction. Higher level
// packages (agent, orchestrator, results) build on these types; core itself has
// no dependencies on them.
package core
