// Package minio provides a MinIO implementation of the blobstore.BlobStore
// interface for self-hosted and S3-compatible object storage.
//
// # Usage
//
//	client, err := miniogo.New("localhost:9000", &miniogo.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := minio.NewStore(client, "snapshots", minio.WithPrefix("sets/"))
package minio
