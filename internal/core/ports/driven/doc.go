// Package driven defines the outbound ports of the knowledge engine:
// the embedding provider, the language model provider, the vector
// store, the document metadata store, and file storage. Adapters under
// internal/adapters/driven implement these interfaces.
package driven
