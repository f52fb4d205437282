package objectstore

import (
	"bytes"
	"context"
	"io"

	"github.com/excelytics/excelytics/config/configkey"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ObjectStore moves raw file bytes in and out of the storage backend by
// object key. The metadata layer never talks to MinIO directly.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

type Impl struct {
	client *minio.Client
	bucket string
}

func New(client *minio.Client, bucket string) *Impl {
	return &Impl{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket if it does not exist yet. Called once at
// startup, before the server accepts traffic.
func (obs *Impl) EnsureBucket(ctx context.Context) error {
	exists, err := obs.client.BucketExists(ctx, obs.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := obs.client.MakeBucket(ctx, obs.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		logrus.Infof("Created bucket %s", obs.bucket)
	}

	return nil
}

func (obs *Impl) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	info, err := obs.client.PutObject(ctx, obs.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return err
	}

	logrus.Infof("Saved object %s (%d bytes)", info.Key, info.Size)
	return nil
}

func (obs *Impl) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := obs.client.GetObject(ctx, obs.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, object); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (obs *Impl) Remove(ctx context.Context, key string) error {
	return obs.client.RemoveObject(ctx, obs.bucket, key, minio.RemoveObjectOptions{})
}

// NewMinioClient builds a client from viper configuration.
func NewMinioClient() (*minio.Client, error) {
	accessKey := viper.GetString(configkey.MinioAccessKey)
	secretKey := viper.GetString(configkey.MinioSecretKey)
	minioHost := viper.GetString(configkey.MinioHost)
	secure := viper.GetBool(configkey.MinioSecure)

	logrus.Infof("Minio host=%s, secure=%v", minioHost, secure)

	return minio.New(minioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
}
