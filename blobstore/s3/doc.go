// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("sets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	mgr := persistence.NewManager(store)
//
// # Features
//
//   - Multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Optional DynamoDB-backed catalog for atomic pointer commits (CatalogStore)
package s3
