package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const presignTTL = time.Hour

// S3Store keeps receipts under receipts/ in a bucket and hands out
// presigned download URLs.
type S3Store struct {
	client *s3.S3
	bucket string
	now    func() time.Time
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &S3Store{client: s3.New(sess), bucket: cfg.Bucket, now: time.Now}, nil
}

func (s *S3Store) Persist(ctx context.Context, booking *domain.Booking) (string, error) {
	key := "receipts/" + artifactName(booking.BookingID, s.now())
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(Render(booking)),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", err
	}
	return s.presign(key)
}

func (s *S3Store) Locate(ctx context.Context, bookingID string) (string, error) {
	prefix := "receipts/" + artifactPrefix(bookingID)
	out, err := s.client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return "", err
	}

	newest := ""
	for _, obj := range out.Contents {
		if key := aws.StringValue(obj.Key); key > newest {
			newest = key
		}
	}
	if newest == "" {
		return "", domain.ErrReceiptNotFound
	}
	return s.presign(newest)
}

func (s *S3Store) presign(key string) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return req.Presign(presignTTL)
}

var _ Store = (*S3Store)(nil)
