package R2Repository

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
)

// GenerateAvatarUploadURL hands the client a short-lived presigned PUT URL.
// Nothing is persisted until the upload is confirmed against the account.
func (r *Repository) GenerateAvatarUploadURL(ctx context.Context, userID uuid.UUID, input types.PresignURLInput) (*types.PresignedURLOutput, error) {
	objectKey := fmt.Sprintf("%s/%s-%s", r.folderName, userID, path.Base(input.Filename))

	presignClient := s3.NewPresignClient(r.client)

	putObjectRequest, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(input.ContentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 5 * time.Minute
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create presigned URL: %w", err)
	}

	return &types.PresignedURLOutput{
		PresignedURL: putObjectRequest.URL,
		UploadURL:    fmt.Sprintf("%s/%s", r.publicURLBase, objectKey),
		ObjectKey:    objectKey,
		ExpiresAt:    time.Now().Add(5 * time.Minute),
	}, nil
}

// DeleteObjectByURL removes a stored object given its public URL. Deleting
// a key that does not exist is a no-op, which keeps retries safe.
func (r *Repository) DeleteObjectByURL(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, r.publicURLBase+"/") {
		return fmt.Errorf("url %q is not under the storage base", url)
	}
	objectKey := strings.TrimPrefix(url, r.publicURLBase+"/")

	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}
