// Package avatar uploads a local image to S3-compatible storage and returns
// the public URL that is then sent to PATCH /users/me/avatar.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxSize is the largest file Upload accepts.
const MaxSize = 5 << 20

var (
	ErrNotConfigured = errors.New("avatar storage is not configured")
	ErrNotImage      = errors.New("file is not an image")
	ErrTooLarge      = errors.New("file is too large")
)

type Config struct {
	Endpoint  string `json:"endpoint"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	PublicURL string `json:"public_url"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// Enabled reports whether uploads can be attempted.
func (c Config) Enabled() bool {
	return c.Bucket != "" && c.Endpoint != ""
}

// publicBase is where uploaded objects can be read from.
func (c Config) publicBase() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	return strings.TrimRight(c.Endpoint, "/") + "/" + c.Bucket
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type Uploader struct {
	cfg    Config
	client objectPutter
	now    func() time.Time
}

func New(ctx context.Context, cfg Config) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Uploader{cfg: cfg, client: client, now: time.Now}, nil
}

// Upload stores the image at path and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	if st.Size() > MaxSize {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, st.Size())
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("detect type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mt.String())
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}

	key := u.objectKey(mt.Extension())
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(st.Size()),
		ContentType:   aws.String(mt.String()),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.cfg.publicBase() + "/" + key, nil
}

func (u *Uploader) objectKey(ext string) string {
	d := u.now().UTC()
	return fmt.Sprintf("avatars/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}
