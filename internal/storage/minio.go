package storage

import (
	"context"
	"io"
	"log"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/granttrack/granttrack/internal/config"
)

var Client *minioSDK.Client
var BucketName string

// Init connects to MinIO and ensures the document bucket exists.
func Init() {
	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	BucketName = config.MinioBucket
	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

func Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := Client.PutObject(ctx, BucketName, objectKey, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return Client.GetObject(ctx, BucketName, objectKey, minioSDK.GetObjectOptions{})
}

func Remove(ctx context.Context, objectKey string) error {
	return Client.RemoveObject(ctx, BucketName, objectKey, minioSDK.RemoveObjectOptions{})
}
