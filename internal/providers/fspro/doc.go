// Package fspro exposes path inspection, metadata, icon, archive, and
// transfer commands as a service provider.
//
// Tools are grouped by concern, each group owning its definitions and
// handlers:
//   - InspectOps: existence and type queries, name decomposition
//   - MetadataOps: sizes, MIME detection, the full metadata record
//   - IconOps: icon extraction with on-disk caching
//   - ArchiveOps: tar+gzip compress and safe decompress
//   - TransferOps: filtered directory moves
//
// All commands take a path and return a Result; failures carry the error
// kind so callers can branch on not_found versus path_traversal without
// string matching.
package fspro
