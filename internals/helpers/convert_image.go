package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxUploadSize  = 2 << 20 // 2MB sebelum konversi
	maxPhotoWidth  = 800
	webpQuality    = 80
)

// ConvertToWebP membaca file foto (jpeg/png), resize kalau kelebaran,
// lalu encode ke WebP lossy. Semua foto member disimpan sebagai WebP
// supaya ukuran di storage kecil & seragam.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, fmt.Errorf("ukuran foto melebihi 2MB (%dKB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file foto: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("format foto tidak dikenali: %w", err)
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
