package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lacantina/turnos-api/internal/config"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Archiver keeps a copy of every exported workbook in S3. It is optional:
// without a bucket configured every call is a no-op, and upload failures
// are logged, never surfaced.
type Archiver struct {
	client *s3.Client
	bucket string
}

func New(cfg *config.Config) *Archiver {
	if cfg.S3Bucket == "" {
		return &Archiver{}
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &Archiver{client: client, bucket: cfg.S3Bucket}
}

func (a *Archiver) Enabled() bool {
	return a.client != nil
}

// Store uploads asynchronously so export responses never wait on S3.
func (a *Archiver) Store(filename string, content []byte) {
	if !a.Enabled() {
		return
	}

	key := fmt.Sprintf("exports/%s/%s", time.Now().Format("2006/01"), filename)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(content),
			ContentType: aws.String(xlsxContentType),
		})
		if err != nil {
			log.Printf("export archive upload failed for %s: %v", key, err)
		}
	}()
}
