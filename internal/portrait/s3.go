package portrait

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	imagepkg "github.com/youruser/quizcard/internal/image"
)

// S3Store keeps portraits in a bucket under Prefix, keyed like DirStore.
type S3Store struct {
	Client s3iface.S3API
	Bucket string
	Prefix string
}

// NewS3Store builds a store from the default credential chain
// (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, shared config, ...).
func NewS3Store(region, bucket, prefix string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &S3Store{Client: s3.New(sess), Bucket: bucket, Prefix: prefix}, nil
}

// Keys lists the object keys tried for name, in order.
func (s *S3Store) Keys(name string) []string {
	key := SanitizeName(name)
	if key == "" {
		return nil
	}
	keys := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		keys = append(keys, path.Join(s.Prefix, key+ext))
	}
	return keys
}

func (s *S3Store) Get(ctx context.Context, name string) (image.Image, error) {
	for _, key := range s.Keys(name) {
		out, err := s.Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			var aerr awserr.Error
			if errors.As(err, &aerr) && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound") {
				continue
			}
			return nil, fmt.Errorf("get s3://%s/%s: %w", s.Bucket, key, err)
		}

		data, err := io.ReadAll(out.Body)
		_ = out.Body.Close()
		if err != nil {
			return nil, err
		}
		img, err := imagepkg.DecodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("decode s3://%s/%s: %w", s.Bucket, key, err)
		}
		return img, nil
	}
	return nil, ErrNotFound
}
