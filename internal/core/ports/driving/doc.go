// Package driving defines the inbound ports of the knowledge engine:
// the ingestion, search, memory, and document operations exposed to
// external callers (CLI, API handlers).
package driving
