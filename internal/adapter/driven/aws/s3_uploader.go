package aws

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/finance-tracker-cli/internal/domain/repository"
)

// putObjectAPI é o subconjunto do cliente S3 usado pelo uploader.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader envia relatórios exportados para um bucket S3.
type S3Uploader struct {
	bucket  string
	prefix  string
	profile string

	mu     sync.Mutex
	client putObjectAPI
}

// NewS3Uploader cria o uploader. profile vazio usa a cadeia padrão de credenciais.
func NewS3Uploader(bucket, prefix, profile string) repository.ReportUploader {
	return &S3Uploader{bucket: bucket, prefix: strings.Trim(prefix, "/"), profile: profile}
}

func (u *S3Uploader) getClient(ctx context.Context) (putObjectAPI, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.client != nil {
		return u.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if u.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(u.profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", u.profile, err)
	}

	u.client = s3.NewFromConfig(cfg)
	return u.client, nil
}

// Upload envia o arquivo e devolve a URI s3:// do objeto.
func (u *S3Uploader) Upload(ctx context.Context, localPath string) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer file.Close()

	key := path.Join(u.prefix, filepath.Base(localPath))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading report to s3://%s/%s: %w", u.bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
