// file: internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"gymku_backend/internals/configs"
)

// UploadBytes taruh blob (umumnya hasil ConvertToWebP) ke bucket OSS
// dan balikan public URL-nya. Nama object dibuat unik per upload.
func UploadBytes(folder, ext string, data []byte) (string, error) {
	client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKeyID, configs.OSSAccessSecret)
	if err != nil {
		return "", fmt.Errorf("gagal init OSS client: %w", err)
	}

	bucket, err := client.Bucket(configs.OSSBucket)
	if err != nil {
		return "", fmt.Errorf("gagal akses bucket: %w", err)
	}

	key := objectKey(folder, ext)
	if err := bucket.PutObject(key, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("gagal upload ke OSS: %w", err)
	}

	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, configs.OSSEndpoint, key), nil
}

// objectKey nama object unik per upload. Ekstensi boleh ditulis dengan atau
// tanpa titik depan ("webp" / ".webp"), hasilnya tetap satu titik.
func objectKey(folder, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().Unix(), uuid.NewString(), ext)
}
