// Package blobstore abstracts the placement of immutable snapshot blobs.
//
// Snapshots produced by the persistence package are small, write-once byte
// blobs, so the interface is a flat Put/Get namespace rather than a streaming
// file API. Backends exist for memory (testing), the local file system, S3
// (with an optional DynamoDB-backed catalog for atomic pointer updates) and
// MinIO/S3-compatible object storage.
package blobstore
