package R2Repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Repository struct {
	client        *s3.Client
	bucketName    string
	folderName    string
	publicURLBase string
}

func NewRepository(accessKeyID, accessKeySecret, bucketName, folderName, publicURLBase, endpoint string) *Repository {
	s3Client := s3.New(s3.Options{
		Region: "auto",
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			accessKeySecret,
			"",
		)),
		BaseEndpoint: aws.String(endpoint),
	})

	return &Repository{
		client:        s3Client,
		bucketName:    bucketName,
		folderName:    folderName,
		publicURLBase: publicURLBase,
	}
}
