package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	imageutil "estatecrm_backend/pkg/utils/image"
)

var (
	s3Client *s3.Client
	bucket   string
	region   string
)

func InitStorage() error {
	bucket = os.Getenv("AWS_BUCKET_NAME")
	if bucket == "" {
		bucket = "property-images"
	}
	region = os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-central-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, os.Getenv("AWS_SECRET_ACCESS_KEY"), ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// UploadPropertyImage optimizes the listing photo and stores it under a
// per-user uuid key. Returns the public URL saved on the property row.
func UploadPropertyImage(file *multipart.FileHeader, userID uint) (string, error) {
	if file.Size > imageutil.MaxImageSize {
		return "", fmt.Errorf("file size too large, maximum is %d bytes", imageutil.MaxImageSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !imageutil.AllowedImageTypes[contentType] {
		return "", fmt.Errorf("invalid file type, allowed types are: jpeg, png, webp")
	}

	buf, encodedType, err := imageutil.ProcessImage(file)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), filepath.Ext(file.Filename))

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(encodedType),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}

// DeleteImage removes a previously uploaded photo, given its public URL.
func DeleteImage(imageURL string) error {
	parts := strings.Split(imageURL, "/")
	if len(parts) < 4 {
		return fmt.Errorf("unrecognized image URL: %s", imageURL)
	}
	key := strings.Join(parts[3:], "/")

	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return err
}
