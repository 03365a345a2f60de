// Package domain contains the lineage model for genesis.
//
// Adam and Eve are process-wide singletons reachable only through GetAdam and
// GetEve. Every other Human is a Male or a Female created with both parents
// known. Humans are immutable and compared by identity.
//
// The domain does not depend on YAML parsing, the filesystem or the terminal.
// Infra/adapters map into/from these types.
package domain
