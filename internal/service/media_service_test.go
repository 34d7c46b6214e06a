package service

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
			}
		}
	}

	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))

	return path
}

func TestNormalizeImage_FitsAndFlattens(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, 2000, 1000)
	s := NewMediaService("", "")

	out, err := s.NormalizeImage(context.Background(), src, []models.Platform{models.PlatformInstagram})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo_instagram_optimized.jpg"), out)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 1080, img.Bounds().Dx())
	assert.Equal(t, 540, img.Bounds().Dy())

	// right half was transparent and must come out white
	r, g, b, _ := img.At(1000, 270).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(8*1024*1024))
}

func TestNormalizeImage_SmallImageKeepsSize(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, 400, 300)
	outDir := t.TempDir()
	s := NewMediaService(outDir, "")

	out, err := s.NormalizeImage(context.Background(), src, []models.Platform{models.PlatformTwitter, models.PlatformFacebook})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "photo_twitter-facebook_optimized.jpg"), out)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(400, 300), img.Bounds().Size())
}

func TestNormalizeImage_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	_, err := NewMediaService("", "").NormalizeImage(context.Background(), path, []models.Platform{models.PlatformTwitter})
	assert.ErrorContains(t, err, "not a supported image")
}

func TestNormalizeImage_MissingFile(t *testing.T) {
	_, err := NewMediaService("", "").NormalizeImage(context.Background(), "/does/not/exist.png", nil)
	assert.Error(t, err)
}

func TestEncodeJPEGUnder_StopsAtQualityFloor(t *testing.T) {
	img := imaging.New(64, 64, color.White)

	data, err := encodeJPEGUnder(img, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestStrictestLimits(t *testing.T) {
	size, duration := strictestLimits([]models.Platform{models.PlatformTwitter, models.PlatformInstagram, "mastodon"})
	assert.Equal(t, 5*1024*1024, size)
	assert.Equal(t, 60, duration)

	size, duration = strictestLimits([]models.Platform{"mastodon"})
	assert.Zero(t, size)
	assert.Zero(t, duration)
}

func writeFakeMP4(t *testing.T, dir string) string {
	t.Helper()
	header := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm'}
	path := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(path, append(header, make([]byte, 512)...), 0o644))
	return path
}

func TestNormalizeVideo_BuildsFFmpegCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeFakeMP4(t, dir)

	var gotName string
	var gotArgs []string
	s := &mediaService{
		ffmpegPath: "ffmpeg",
		lookPath:   func(string) (string, error) { return "/usr/bin/ffmpeg", nil },
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return nil, nil
		},
	}

	out, err := s.NormalizeVideo(context.Background(), src, []models.Platform{models.PlatformTwitter, models.PlatformInstagram})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "clip_twitter-instagram_optimized.mp4"), out)
	assert.Equal(t, "ffmpeg", gotName)
	assert.Equal(t, []string{
		"-y", "-i", src,
		"-t", "60",
		"-vf", "scale='min(1280,iw)':-2",
		"-c:v", "libx264",
		"-b:v", "2000k",
		"-c:a", "aac",
		out,
	}, gotArgs)
}

func TestNormalizeVideo_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writeFakeMP4(t, dir)

	missing := &mediaService{
		ffmpegPath: "ffmpeg",
		lookPath:   func(string) (string, error) { return "", errors.New("not found") },
		run:        runCommand,
	}
	_, err := missing.NormalizeVideo(context.Background(), src, nil)
	assert.ErrorContains(t, err, "ffmpeg not available")

	failing := &mediaService{
		ffmpegPath: "ffmpeg",
		lookPath:   func(string) (string, error) { return "/usr/bin/ffmpeg", nil },
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("Invalid data found"), errors.New("exit status 1")
		},
	}
	_, err = failing.NormalizeVideo(context.Background(), src, nil)
	assert.ErrorContains(t, err, "transcode video")

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain text"), 0o644))
	_, err = failing.NormalizeVideo(context.Background(), text, nil)
	assert.ErrorContains(t, err, "not a supported video")
}
