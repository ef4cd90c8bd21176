package types

import "time"

// PresignURLInput - avatar upload request
type PresignURLInput struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PresignedURLOutput - one-shot upload grant for the client
type PresignedURLOutput struct {
	PresignedURL string    `json:"presignedUrl"`
	UploadURL    string    `json:"uploadUrl"`
	ObjectKey    string    `json:"objectKey"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AvatarConfirmInput - persists the uploaded object URL on the account
type AvatarConfirmInput struct {
	URL string `json:"url" binding:"required,url"`
}
