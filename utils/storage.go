package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3-compatible object storage for establishment logos and dish/review images.
var (
	accessKey = os.Getenv("S3_ACCESS_KEY")
	secretKey = os.Getenv("S3_SECRET_KEY")
	bucket    = envOr("S3_BUCKET", "gastro-media")
	region    = envOr("S3_REGION", "us-east-1")
	endpoint  = os.Getenv("S3_ENDPOINT")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getS3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return s3.New(sess)
}

// UploadFileToS3 stores the file under folder/fileName and returns its public URL.
func UploadFileToS3(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := getS3Client()

	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String("image/jpeg"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s%s/%s", bucket, endpointHost(), filePath), nil
}

func endpointHost() string {
	if endpoint == "" {
		return ".s3.amazonaws.com"
	}
	return "." + trimScheme(endpoint)
}

func trimScheme(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(url) > len(prefix) && url[:len(prefix)] == prefix {
			return url[len(prefix):]
		}
	}
	return url
}
