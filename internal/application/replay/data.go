package replay

// FormatVersion is written into every new recording
const FormatVersion = "2.0"

// FrameInput records the intents issued during a single frame
type FrameInput struct {
	F  int     `json:"f" msgpack:"f"`                     // Frame number
	MX float64 `json:"mx" msgpack:"mx"`                   // Movement intent X
	MY float64 `json:"my" msgpack:"my"`                   // Movement intent Y
	P  bool    `json:"p,omitempty" msgpack:"p,omitempty"` // Pause toggled
	U  string  `json:"u,omitempty" msgpack:"u,omitempty"` // Upgrade key applied
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Seed      int64        `json:"seed" msgpack:"seed"`
	Mode      string       `json:"mode" msgpack:"mode"`
	TPS       int          `json:"tps" msgpack:"tps"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}

// DT returns the fixed tick length the run was recorded at
func (d ReplayData) DT() float64 {
	if d.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(d.TPS)
}
