package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/biopage/backend/config"
)

var ErrInvalidImage = errors.New("invalid image payload")

// ImageService stores profile images on S3 and returns their public URLs
type ImageService struct {
	s3Config *config.S3Config
}

// Ensure ImageService implements IImageService
var _ IImageService = (*ImageService)(nil)

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadProfileImage uploads image data to S3 and returns the public URL
func (s *ImageService) UploadProfileImage(ctx context.Context, data []byte, fileName string) (string, error) {
	contentType := http.DetectContentType(data)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] uploaded profile image to %s", publicURL)

	return publicURL, nil
}

// DecodeBase64Image decodes an inline image payload, accepting both raw
// base64 and data-URI form ("data:image/png;base64,...")
func DecodeBase64Image(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return data, nil
}
