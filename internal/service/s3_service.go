package service

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Service : адаптер объектного хранилища. Supabase Storage доступен через S3-совместимый endpoint
type S3Service struct {
	client        *s3.Client
	uploader      *manager.Uploader
	psClient      *s3.PresignClient
	bucket        string
	publicBaseURL string
}

func NewS3Service(ctx context.Context, cfg *config.S3Config) (*S3Service, error) {
	var client *s3.Client

	if cfg.Endpoint != "" {
		accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
		if cfg.Local && accessKey == "" {
			accessKey, secretKey = "minioadmin", "minioadmin"
		}
		client = s3.New(s3.Options{
			Region:       cfg.Region,
			Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	if cfg.Local {
		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3Service] ошибка создания бакета", err)
		}
	}

	return &S3Service{
		client:        client,
		uploader:      manager.NewUploader(client),
		psClient:      s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[S3Service] ошибка создания бакета", err)
	}

	util.Logger.Info("[S3Service] бакет успешно создан", zap.String("bucket", bucket))
	return nil
}

// Upload : загрузка объекта, большие файлы уходят multipart-частями
func (s *S3Service) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return util.LogError("[S3Service] не удалось загрузить объект", err,
			zap.String("bucket", s.bucket), zap.String("file_path", key))
	}
	return nil
}

// PresignGet : генерация pre-signed URL для GET
func (s *S3Service) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expire
	})
	if err != nil {
		return "", util.LogError("[S3Service] не удалось сгенерировать presigned GET URL", err,
			zap.String("bucket", s.bucket), zap.String("file_path", key))
	}

	return req.URL, nil
}

// Delete : удаление объекта
func (s *S3Service) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return util.LogError("[S3Service] не удалось удалить объект", err,
			zap.String("bucket", s.bucket), zap.String("file_path", key))
	}
	return nil
}

// PublicURL : адрес объекта в публичном бакете
func (s *S3Service) PublicURL(key string) string {
	return publicObjectURL(s.publicBaseURL, key)
}

func publicObjectURL(baseURL, key string) string {
	if baseURL == "" {
		return ""
	}
	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return baseURL + "/" + strings.Join(segments, "/")
}
