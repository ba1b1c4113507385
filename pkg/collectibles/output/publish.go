package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageConfig holds configuration for the object storage the artifact is
// published to.
type StorageConfig struct {
	// Enabled turns publishing on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket the artifact is uploaded to.
	Bucket string `mapstructure:"bucket" default:"collectibles"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Object is the object name of the artifact.
	Object string `mapstructure:"object" default:"collectibles.json"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ObjectClient is the subset of the minio client used for publishing.
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// NewObjectClient creates a minio client for the configured endpoint.
func NewObjectClient(cfg StorageConfig) (ObjectClient, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return client, nil
}

// Publisher uploads the serialized artifact to object storage.
type Publisher struct {
	client ObjectClient
	bucket string
	object string
	region string
}

// NewPublisher creates a publisher writing cfg.Object into cfg.Bucket.
func NewPublisher(client ObjectClient, cfg StorageConfig) *Publisher {
	return &Publisher{client: client, bucket: cfg.Bucket, object: cfg.Object, region: cfg.Region}
}

// Publish uploads data, creating the bucket when it does not exist yet.
func (p *Publisher) Publish(ctx context.Context, data []byte) (minio.UploadInfo, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("check bucket %q: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return minio.UploadInfo{}, fmt.Errorf("create bucket %q: %w", p.bucket, err)
		}
	}

	info, err := p.client.PutObject(ctx, p.bucket, p.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("upload %s/%s: %w", p.bucket, p.object, err)
	}
	return info, nil
}
