package portrait

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/StyleHubServices/salon-scheduler/internal/config"
)

// Los retratos de estilista se limitan a 512x512.
const MaxDimension = 512

type Uploader struct {
	client    *s3.Client
	bucket    string
	region    string
	mediaBase string
}

// NewUploader devuelve nil si el almacenamiento no está configurado;
// el handler de retratos lo trata como función deshabilitada.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		mediaBase: cfg.MediaBase,
	}
}

// Process decodifica la imagen (jpeg, png o webp), la reduce si excede
// 512 en cualquier eje manteniendo la proporción y la reencodea a webp.
func Process(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w > MaxDimension || h > MaxDimension {
		scale := float64(MaxDimension) / float64(w)
		if h > w {
			scale = float64(MaxDimension) / float64(h)
		}

		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

func (u *Uploader) Upload(ctx context.Context, data []byte) (string, error) {
	key := "stylists/" + uuid.NewString() + ".webp"

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload portrait: %w", err)
	}

	if u.mediaBase != "" {
		return u.mediaBase + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
