package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/country-gateway/internal/database"
	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/ds124wfegd/country-gateway/internal/pkg/countries"
	"github.com/ds124wfegd/country-gateway/internal/pkg/upstream"
	"github.com/sirupsen/logrus"

	// restcountries serves png, other mirrors may hand out webp
	_ "golang.org/x/image/webp"
)

// defaultMaxImageBytes caps a downloaded flag; real flags are a few KB.
const defaultMaxImageBytes = 10 << 20

type FlagProcessor interface {
	FetchAndResize(ctx context.Context, countryCode string) (*entity.FlagImageResult, error)
}

type flagProcessor struct {
	countries  countries.Client
	downloader *upstream.Client
	repo       database.FlagRepository
	maxWidth   int
	maxBytes   int64
}

func NewFlagProcessor(countryClient countries.Client, downloader *upstream.Client, repo database.FlagRepository, maxWidth int) FlagProcessor {
	return &flagProcessor{
		countries:  countryClient,
		downloader: downloader,
		repo:       repo,
		maxWidth:   maxWidth,
		maxBytes:   defaultMaxImageBytes,
	}
}

func (p *flagProcessor) FetchAndResize(ctx context.Context, countryCode string) (*entity.FlagImageResult, error) {
	details, err := p.countries.Fetch(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrFlagNotFound, err)
	}
	if details.FlagPNG == "" {
		return nil, fmt.Errorf("%w: no png flag for %s", entity.ErrFlagNotFound, details.CountryCode)
	}

	img, err := p.download(ctx, details.FlagPNG)
	if err != nil {
		return nil, err
	}

	resized := ResizeToWidth(img, p.maxWidth)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrImageEncode, err)
	}

	outputPath, err := p.repo.SaveFlag(countryCode, p.maxWidth, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrFilesystemWrite, err)
	}

	result := &entity.FlagImageResult{
		OutputPath: outputPath,
		Width:      resized.Bounds().Dx(),
		Height:     resized.Bounds().Dy(),
	}

	logrus.WithFields(logrus.Fields{
		"country_code": details.CountryCode,
		"output_path":  result.OutputPath,
		"width":        result.Width,
		"height":       result.Height,
	}).Info("flag resized")

	return result, nil
}

func (p *flagProcessor) download(ctx context.Context, url string) (image.Image, error) {
	resp, err := p.downloader.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrImageDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned status %d", entity.ErrImageDownload, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrImageDownload, err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, fmt.Errorf("%w: image too large (over %d bytes)", entity.ErrImageDownload, p.maxBytes)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrImageDecode, err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", entity.ErrImageDecode)
	}
	return img, nil
}

// ResizeToWidth scales img to exactly width pixels wide with the Lanczos filter.
// Narrower images are scaled up.
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, width, ScaledHeight(b.Dx(), b.Dy(), width), imaging.Lanczos)
}

// ScaledHeight is floor(height * width / originalWidth), never less than 1.
func ScaledHeight(originalWidth, originalHeight, width int) int {
	h := originalHeight * width / originalWidth
	if h < 1 {
		return 1
	}
	return h
}
