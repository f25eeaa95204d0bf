package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nomad/config"
	"nomad/infras/otel"
	"nomad/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	region            = "auto"
)

var ErrEmptyFile = errors.New("file is empty")

// S3 stores profile and accommodation images on an S3 compatible bucket
// (R2, MinIO, AWS) and hands back their public URL.
type S3 interface {
	// Upload writes data under directory with a generated name and returns the public URL.
	Upload(ctx context.Context, directory, contentType string, data []byte) (url string, err error)
	// DeleteByURL removes the object behind a URL returned by Upload. URLs that do not point into
	// the bucket are ignored.
	DeleteByURL(ctx context.Context, url string) error
}

type s3Impl struct {
	client *s3.Client
	bucket string
	public string
	api    string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	provider := credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithCredentialsProvider(provider))
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(settings.APIEndpoint)
		o.UsePathStyle = true
		o.Region = region
	})

	return &s3Impl{
		client: client,
		bucket: settings.BucketName,
		public: strings.TrimSuffix(settings.PublicDomain, "/"),
		api:    strings.TrimSuffix(settings.APIEndpoint, "/"),
		otel:   otel,
	}
}

func objectName(contentType string) string {
	return uuid.NewString() + "." + strings.TrimPrefix(contentType, "image/")
}

func (svc *s3Impl) Upload(ctx context.Context, directory, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(data) == 0 {
		return constant.Empty, ErrEmptyFile
	}

	key := path.Join(directory, objectName(contentType))

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.public + "/" + key, nil
}

func (svc *s3Impl) DeleteByURL(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteByURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := svc.keyFromURL(url)
	if key == constant.Empty {
		log.Debug().Str("url", url).Msg("url is not in the bucket, nothing to delete")

		return nil
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// keyFromURL accepts both the public domain form and the path style API form.
func (svc *s3Impl) keyFromURL(url string) string {
	prefixes := []string{svc.public + "/", svc.api + "/" + svc.bucket + "/"}

	for _, prefix := range prefixes {
		if prefix != "/" && strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix)
		}
	}

	return constant.Empty
}
