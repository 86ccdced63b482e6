package util

import (
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var (
	ErrUnreadableVideo = &wrapped{msg: "unreadable video", err: ErrValidation}
	ErrNoVideoStream   = &wrapped{msg: "file has no video stream", err: ErrValidation}
	ErrEmptyVideo      = &wrapped{msg: "video has no playable duration", err: ErrValidation}
)

// LessonVideo is what a lesson keeps from an uploaded video.
type LessonVideo struct {
	Seconds   int
	Width     int
	Height    int
	Container string
}

// ProbeLessonVideo reads a local video through ffprobe. Every failure matches
// ErrValidation, so a bad upload answers 400.
func ProbeLessonVideo(path string) (*LessonVideo, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableVideo, err)
	}
	return lessonVideoFromProbe(out)
}

func lessonVideoFromProbe(out string) (*LessonVideo, error) {
	var probe struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration   string `json:"duration"`
			FormatName string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableVideo, err)
	}

	video := &LessonVideo{}
	found := false
	for _, stream := range probe.Streams {
		if stream.CodecType == "video" {
			video.Width, video.Height = stream.Width, stream.Height
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoVideoStream
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil || seconds <= 0 {
		return nil, ErrEmptyVideo
	}
	// sub-second clips still count as one second of viewing
	video.Seconds = max(1, int(math.Round(seconds)))

	video.Container = "unknown"
	if name, _, _ := strings.Cut(probe.Format.FormatName, ","); name != "" {
		video.Container = name
	}
	return video, nil
}

// posterOffset picks the frame one second in, or the middle of clips shorter than two seconds.
func posterOffset(seconds int) string {
	if seconds >= 2 {
		return "1"
	}
	return "0.5"
}

// ExtractPoster writes one JPEG frame of the video to posterPath.
func ExtractPoster(videoPath, posterPath string, video *LessonVideo) error {
	return ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": posterOffset(video.Seconds)}).
		Output(posterPath, ffmpeg.KwArgs{"vframes": "1", "q:v": "2"}).
		OverWriteOutput().
		Run()
}

// FFmpegAvailable reports whether the ffmpeg binary runs; ffmpeg-go has no version call.
func FFmpegAvailable() error {
	if err := exec.Command("ffmpeg", "-version", "-hide_banner").Run(); err != nil {
		return fmt.Errorf("ffmpeg unavailable: %w", err)
	}
	return nil
}
