package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"golang.org/x/image/webp"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

const (
	maxImageDimension  = 1080
	maxVideoWidth      = 1280
	initialJPEGQuality = 85
	minJPEGQuality     = 20
	jpegQualityStep    = 5
	videoBitrate       = "2000k"
)

type mediaLimits struct {
	MaxImageSizeMB    float64
	MaxVideoDurationS int
}

var platformMediaLimits = map[models.Platform]mediaLimits{
	models.PlatformTwitter:   {MaxImageSizeMB: 5, MaxVideoDurationS: 140},
	models.PlatformInstagram: {MaxImageSizeMB: 8, MaxVideoDurationS: 60},
	models.PlatformLinkedIn:  {MaxImageSizeMB: 10, MaxVideoDurationS: 600},
	models.PlatformFacebook:  {MaxImageSizeMB: 4, MaxVideoDurationS: 240},
}

// strictestLimits returns the smallest image size (bytes) and video duration
// (seconds) across the known platforms. Zero means unconstrained.
func strictestLimits(platforms []models.Platform) (maxImageBytes int, maxDuration int) {
	for _, p := range platforms {
		limits, ok := platformMediaLimits[p]
		if !ok {
			continue
		}
		size := int(limits.MaxImageSizeMB * 1024 * 1024)
		if maxImageBytes == 0 || size < maxImageBytes {
			maxImageBytes = size
		}
		if maxDuration == 0 || limits.MaxVideoDurationS < maxDuration {
			maxDuration = limits.MaxVideoDurationS
		}
	}
	return maxImageBytes, maxDuration
}

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type mediaService struct {
	outputDir  string
	ffmpegPath string
	run        commandRunner
	lookPath   func(string) (string, error)
}

// NewMediaService writes normalized files to outputDir, or next to the source
// when outputDir is empty.
func NewMediaService(outputDir, ffmpegPath string) MediaService {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &mediaService{
		outputDir:  outputDir,
		ffmpegPath: ffmpegPath,
		run:        runCommand,
		lookPath:   exec.LookPath,
	}
}

func (s *mediaService) outputPath(src string, platforms []models.Platform, ext string) string {
	dir := s.outputDir
	if dir == "" {
		dir = filepath.Dir(src)
	}

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}
	if len(names) > 0 {
		stem += "_" + strings.Join(names, "-")
	}

	return filepath.Join(dir, stem+"_optimized"+ext)
}

func (s *mediaService) NormalizeImage(ctx context.Context, path string, platforms []models.Platform) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("read image: %w", err)
	}

	img, err := decodeImage(data)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)

	// JPEG has no alpha channel.
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat := imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)

	maxBytes, _ := strictestLimits(platforms)
	encoded, err := encodeJPEGUnder(flat, maxBytes)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	out := s.outputPath(path, platforms, ".jpg")
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("write image: %w", err)
	}

	return out, nil
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image file")
	}
	if !filetype.IsImage(data) {
		return nil, errors.New("file is not a supported image")
	}

	if filetype.Is(data, "webp") {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode webp: %w", err)
		}
		return img, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// encodeJPEGUnder lowers quality in steps of 5 until the output fits maxBytes
// or the quality floor is reached. maxBytes of 0 encodes once.
func encodeJPEGUnder(img image.Image, maxBytes int) ([]byte, error) {
	var buf bytes.Buffer
	for quality := initialJPEGQuality; ; quality -= jpegQualityStep {
		buf.Reset()
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		if maxBytes == 0 || buf.Len() <= maxBytes || quality-jpegQualityStep < minJPEGQuality {
			return buf.Bytes(), nil
		}
	}
}

func (s *mediaService) NormalizeVideo(ctx context.Context, path string, platforms []models.Platform) (string, error) {
	head := make([]byte, 261)
	f, err := os.Open(path)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("open video: %w", err)
	}
	n, _ := f.Read(head)
	f.Close()

	if !filetype.IsVideo(head[:n]) {
		err := errors.New("file is not a supported video")
		slog.Info(err.Error())
		return "", err
	}

	if _, err := s.lookPath(s.ffmpegPath); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("ffmpeg not available: %w", err)
	}

	out := s.outputPath(path, platforms, ".mp4")
	args := []string{"-y", "-i", path}
	if _, maxDuration := strictestLimits(platforms); maxDuration > 0 {
		args = append(args, "-t", strconv.Itoa(maxDuration))
	}
	args = append(args,
		"-vf", fmt.Sprintf("scale='min(%d,iw)':-2", maxVideoWidth),
		"-c:v", "libx264",
		"-b:v", videoBitrate,
		"-c:a", "aac",
		out,
	)

	if output, err := s.run(ctx, s.ffmpegPath, args...); err != nil {
		slog.Info("ffmpeg failed", "error", err, "output", lastLines(string(output), 5))
		return "", fmt.Errorf("transcode video: %w", err)
	}

	return out, nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
