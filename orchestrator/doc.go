// Package orchestrator manages a set of named agents: registration and
// capability queries, routed task execution with result caching, multi-step
// workflows with inter-step context propagation, and a background loop that
// drains queued tasks and sweeps expired results.
//
// An Orchestrator is constructed explicitly by the application's composition
// root and its background loop is tied to the host's startup/shutdown; there
// is no package-level instance.
package orchestrator
