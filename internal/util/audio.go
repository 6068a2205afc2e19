package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// AudioInfo holds the probed metadata for an uploaded pronunciation clip.
type AudioInfo struct {
	Duration float64 `json:"duration"` // seconds
	Codec    string  `json:"codec"`
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// GetAudioInfo probes an uploaded audio file. Content creators attach
// pronunciation clips to lessons and vocabulary items; a clip that ffprobe
// cannot decode is rejected before it reaches storage.
func GetAudioInfo(audioPath string) (*AudioInfo, error) {
	fileInfo, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to probe audio: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("failed to parse probe output: %v", err)
	}

	var codec string
	for _, stream := range result.Streams {
		if stream.CodecType == "audio" {
			codec = stream.CodecName
			break
		}
	}
	if codec == "" {
		return nil, fmt.Errorf("no audio stream in file")
	}

	duration, _ := strconv.ParseFloat(result.Format.Duration, 64)

	return &AudioInfo{
		Duration: duration,
		Codec:    codec,
		Format:   result.Format.Format,
		Size:     fileInfo.Size(),
	}, nil
}
