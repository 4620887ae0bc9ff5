package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service sube adjuntos de tickets al bucket configurado
type S3Service struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Service initializes the S3 service
func NewS3Service() (*S3Service, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(regionBucket()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not set in environment variables")
	}

	client := s3.NewFromConfig(cfg)

	return &S3Service{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

func regionBucket() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return "us-east-1"
}

// UploadAdjunto sube un adjunto de ticket a S3 y devuelve su URL pública
func (s *S3Service) UploadAdjunto(file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	defer file.Close()

	// Leer el contenido del archivo
	buffer := bytes.NewBuffer(nil)
	if _, err := buffer.ReadFrom(file); err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	// Nombre único bajo el prefijo de adjuntos
	filename := fmt.Sprintf("adjuntos/%d_%s", time.Now().Unix(), fileHeader.Filename)

	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	}

	if _, err := s.Client.PutObject(context.TODO(), putObjectInput); err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, filename)
	return url, nil
}
