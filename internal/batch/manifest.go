package batch

import (
	"encoding/json"
	"os"

	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame  int     `json:"frame"`
	Image  string  `json:"image"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	YawDeg float64 `json:"yaw_deg"`
	Action string  `json:"action"`
}

// WriteManifest writes manifest.json describing every frame and its pose.
func WriteManifest(path string, poses []camera.Camera, ext string) error {
	entries := make([]ManifestEntry, len(poses))
	for i, p := range poses {
		entries[i] = ManifestEntry{
			Frame:  i,
			Image:  FrameName(i, ext),
			X:      p.Position[0],
			Z:      p.Position[2],
			YawDeg: p.Yaw / mathutil.Deg2Rad(1),
			Action: p.Action.String(),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
