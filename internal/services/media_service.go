package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
)

// Media key prefixes inside the media bucket.
const (
	MediaProfileImage = "profile-images"
	MediaProjectLogo  = "project-logos"
	MediaProjectImage = "project-images"
)

// UploadMedia stores a multipart "file" field under the given prefix with a
// timestamped object name and returns its public URL.
func UploadMedia(c *fiber.Ctx, prefix string) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", errors.New("failed to retrieve file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.New("failed to open file")
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("failed to read file")
	}

	objectName := fmt.Sprintf("%s/%d_%s", prefix, time.Now().Unix(), fileHeader.Filename)

	_, err = storage.MinioClient.PutObject(
		c.Context(),
		storage.MediaBucket,
		objectName,
		bytes.NewReader(fileBytes),
		int64(len(fileBytes)),
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", errors.New("failed to upload file to storage: " + err.Error())
	}

	return storage.PublicURL(objectName), nil
}

// RemoveMediaByURL deletes an uploaded object given the URL stored on a
// document. Unknown URLs are ignored.
func RemoveMediaByURL(ctx context.Context, url string) error {
	objectName := storage.ObjectKeyFromURL(url)
	if objectName == "" {
		return nil
	}
	return storage.MinioClient.RemoveObject(ctx, storage.MediaBucket, objectName, minio.RemoveObjectOptions{})
}
