package s3

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/denseset/blobstore"
)

// ErrConcurrentModification is returned when a concurrent pointer commit is
// detected.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// DDBClient is the subset of the DynamoDB API the catalog uses.
// *dynamodb.Client satisfies it.
type DDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// CatalogStore wraps a BlobStore and routes CURRENT pointer blobs through a
// DynamoDB table, giving the compare-and-swap semantics that S3 lacks so
// multiple writers can commit snapshots safely.
//
// Snapshot payload blobs pass straight through to the inner store; only blobs
// named "CURRENT" (with any directory prefix) are intercepted.
//
// Table schema, partition key only:
//
//	aws dynamodb create-table \
//	  --table-name denseset-catalog \
//	  --attribute-definitions AttributeName=pk,AttributeType=S \
//	  --key-schema AttributeName=pk,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type CatalogStore struct {
	inner     blobstore.BlobStore
	ddbClient DDBClient
	tableName string
	namespace string // partition-key prefix, e.g. "s3://bucket/prefix"
}

// Compile-time check to ensure CatalogStore satisfies blobstore.BlobStore.
var _ blobstore.BlobStore = (*CatalogStore)(nil)

// NewCatalogStore creates a catalog store over inner. The namespace becomes
// part of the partition key and should uniquely identify the blob location,
// e.g. "s3://bucket/prefix".
func NewCatalogStore(inner blobstore.BlobStore, ddbClient DDBClient, tableName, namespace string) *CatalogStore {
	return &CatalogStore{
		inner:     inner,
		ddbClient: ddbClient,
		tableName: tableName,
		namespace: namespace,
	}
}

func isPointer(name string) bool {
	return name == "CURRENT" || strings.HasSuffix(name, "/CURRENT")
}

func (s *CatalogStore) pk(name string) string {
	return s.namespace + "#" + name
}

// Get reads a blob; pointer blobs come from DynamoDB.
func (s *CatalogStore) Get(ctx context.Context, name string) ([]byte, error) {
	if !isPointer(name) {
		return s.inner.Get(ctx, name)
	}

	target, _, err := s.getPointer(ctx, name)
	if err != nil {
		return nil, err
	}
	return []byte(target), nil
}

// Put writes a blob; pointer blobs commit through a DynamoDB conditional
// write and fail with ErrConcurrentModification when another writer won.
func (s *CatalogStore) Put(ctx context.Context, name string, data []byte) error {
	if !isPointer(name) {
		return s.inner.Put(ctx, name, data)
	}

	_, version, err := s.getPointer(ctx, name)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return err
	}

	item := map[string]ddbtypes.AttributeValue{
		"pk":      &ddbtypes.AttributeValueMemberS{Value: s.pk(name)},
		"target":  &ddbtypes.AttributeValueMemberS{Value: string(data)},
		"version": &ddbtypes.AttributeValueMemberN{Value: strconv.FormatUint(version+1, 10)},
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}
	if version == 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(pk)")
	} else {
		input.ConditionExpression = aws.String("version = :v")
		input.ExpressionAttributeValues = map[string]ddbtypes.AttributeValue{
			":v": &ddbtypes.AttributeValueMemberN{Value: strconv.FormatUint(version, 10)},
		}
	}

	if _, err := s.ddbClient.PutItem(ctx, input); err != nil {
		var ccf *ddbtypes.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrConcurrentModification
		}
		return err
	}
	return nil
}

// Delete removes a blob; pointer blobs are removed from DynamoDB.
func (s *CatalogStore) Delete(ctx context.Context, name string) error {
	if !isPointer(name) {
		return s.inner.Delete(ctx, name)
	}

	_, err := s.ddbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]ddbtypes.AttributeValue{
			"pk": &ddbtypes.AttributeValueMemberS{Value: s.pk(name)},
		},
	})
	return err
}

// List delegates to the inner store. Pointer blobs live in DynamoDB and do
// not appear in listings.
func (s *CatalogStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CatalogStore) getPointer(ctx context.Context, name string) (target string, version uint64, err error) {
	out, err := s.ddbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		ConsistentRead: aws.Bool(true),
		Key: map[string]ddbtypes.AttributeValue{
			"pk": &ddbtypes.AttributeValueMemberS{Value: s.pk(name)},
		},
	})
	if err != nil {
		return "", 0, err
	}
	if out.Item == nil {
		return "", 0, blobstore.ErrNotFound
	}

	if v, ok := out.Item["target"].(*ddbtypes.AttributeValueMemberS); ok {
		target = v.Value
	}
	if v, ok := out.Item["version"].(*ddbtypes.AttributeValueMemberN); ok {
		version, err = strconv.ParseUint(v.Value, 10, 64)
		if err != nil {
			return "", 0, err
		}
	}

	return target, version, nil
}
