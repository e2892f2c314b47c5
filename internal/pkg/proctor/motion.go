package proctor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

const (
	// PixelThreshold is the mean per-channel difference (0-255) above which a
	// pixel counts as changed.
	PixelThreshold = 60
	// MotionRatio is the share of changed pixels that counts as motion.
	MotionRatio = 0.40

	// Clients send downscaled frames; anything larger is rejected before decoding.
	MaxFrameWidth  = 640
	MaxFrameHeight = 480
)

var (
	ErrFrameSize  = errors.New("frames must have the same dimensions")
	ErrEmptyFrame = errors.New("frame has no pixels")
	ErrFrameLarge = fmt.Errorf("frame must be at most %dx%d pixels", MaxFrameWidth, MaxFrameHeight)
)

// ChangedFraction compares two equally-sized frames pixel by pixel.
func ChangedFraction(prev, cur image.Image) (float64, error) {
	pb, cb := prev.Bounds(), cur.Bounds()
	if pb.Dx() != cb.Dx() || pb.Dy() != cb.Dy() {
		return 0, ErrFrameSize
	}
	total := pb.Dx() * pb.Dy()
	if total == 0 {
		return 0, ErrEmptyFrame
	}

	changed := 0
	for y := 0; y < pb.Dy(); y++ {
		for x := 0; x < pb.Dx(); x++ {
			r1, g1, b1, _ := prev.At(pb.Min.X+x, pb.Min.Y+y).RGBA()
			r2, g2, b2, _ := cur.At(cb.Min.X+x, cb.Min.Y+y).RGBA()
			// mean > threshold, kept in integers so fractional means are not truncated
			sum := absDiff8(r1, r2) + absDiff8(g1, g2) + absDiff8(b1, b2)
			if sum > 3*PixelThreshold {
				changed++
			}
		}
	}
	return float64(changed) / float64(total), nil
}

// DetectMotion reports whether cur differs from prev enough to count as a
// motion violation.
func DetectMotion(prev, cur image.Image) (bool, float64, error) {
	fraction, err := ChangedFraction(prev, cur)
	if err != nil {
		return false, 0, err
	}
	return fraction > MotionRatio, fraction, nil
}

// DecodeFrame accepts raw base64 or a data URL holding a PNG or JPEG image of
// at most MaxFrameWidth x MaxFrameHeight pixels.
func DecodeFrame(encoded string) (image.Image, error) {
	if i := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("frame is not valid base64: %w", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("frame is not a png or jpeg image: %w", err)
	}
	if cfg.Width > MaxFrameWidth || cfg.Height > MaxFrameHeight {
		return nil, ErrFrameLarge
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("frame is not a png or jpeg image: %w", err)
	}
	return img, nil
}

// absDiff8 works on the 16-bit channels returned by color.Color.RGBA.
func absDiff8(a, b uint32) int {
	x, y := int(a>>8), int(b>>8)
	if x > y {
		return x - y
	}
	return y - x
}
