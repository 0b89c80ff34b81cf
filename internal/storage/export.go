package storage

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/fuzzpong/internal/pong"
)

// frameRecord is the flat CSV layout of a pong.Frame.
type frameRecord struct {
	Tick   int     `csv:"tick"`
	BallX  float64 `csv:"ball_x"`
	BallY  float64 `csv:"ball_y"`
	BallVX float64 `csv:"ball_vx"`
	BallVY float64 `csv:"ball_vy"`

	TopX       float64 `csv:"top_x"`
	TopDx      float64 `csv:"top_dx"`
	TopDy      float64 `csv:"top_dy"`
	TopCommand float64 `csv:"top_command"`
	TopApplied float64 `csv:"top_applied"`

	BottomX       float64 `csv:"bottom_x"`
	BottomDx      float64 `csv:"bottom_dx"`
	BottomDy      float64 `csv:"bottom_dy"`
	BottomCommand float64 `csv:"bottom_command"`
	BottomApplied float64 `csv:"bottom_applied"`
}

func toRecord(f pong.Frame) *frameRecord {
	top, bottom := f.Paddle(pong.Top), f.Paddle(pong.Bottom)
	return &frameRecord{
		Tick: f.Tick, BallX: f.BallX, BallY: f.BallY, BallVX: f.BallVX, BallVY: f.BallVY,
		TopX: top.X, TopDx: top.Dx, TopDy: top.Dy, TopCommand: top.Command, TopApplied: top.Applied,
		BottomX: bottom.X, BottomDx: bottom.Dx, BottomDy: bottom.Dy, BottomCommand: bottom.Command, BottomApplied: bottom.Applied,
	}
}

func (r *frameRecord) frame() pong.Frame {
	f := pong.Frame{Tick: r.Tick, BallX: r.BallX, BallY: r.BallY, BallVX: r.BallVX, BallVY: r.BallVY}
	f.Paddles[pong.Top] = pong.Paddle{X: r.TopX, Dx: r.TopDx, Dy: r.TopDy, Command: r.TopCommand, Applied: r.TopApplied}
	f.Paddles[pong.Bottom] = pong.Paddle{X: r.BottomX, Dx: r.BottomDx, Dy: r.BottomDy, Command: r.BottomCommand, Applied: r.BottomApplied}
	return f
}

// WriteFramesCSV writes frames with a header row.
func WriteFramesCSV(w io.Writer, frames []pong.Frame) error {
	records := make([]*frameRecord, len(frames))
	for i, f := range frames {
		records[i] = toRecord(f)
	}
	return gocsv.Marshal(records, w)
}

// FrameStream writes frames to CSV one at a time, emitting the header with
// the first frame. It satisfies sim.Observer; the first write error stops
// further output and is reported by Err.
type FrameStream struct {
	w       io.Writer
	written int
	err     error
}

func NewFrameStream(w io.Writer) *FrameStream {
	return &FrameStream{w: w}
}

func (s *FrameStream) Write(f pong.Frame) error {
	if s.err != nil {
		return s.err
	}

	rec := []*frameRecord{toRecord(f)}
	if s.written == 0 {
		s.err = gocsv.Marshal(rec, s.w)
	} else {
		s.err = gocsv.MarshalWithoutHeaders(rec, s.w)
	}
	if s.err == nil {
		s.written++
	}
	return s.err
}

func (s *FrameStream) OnTick(f pong.Frame, _ pong.Events) { _ = s.Write(f) }

// Written is the number of frames written so far.
func (s *FrameStream) Written() int { return s.written }

func (s *FrameStream) Err() error { return s.err }

func ReadFramesCSV(r io.Reader) ([]pong.Frame, error) {
	var records []*frameRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}
	frames := make([]pong.Frame, len(records))
	for i, rec := range records {
		frames[i] = rec.frame()
	}
	return frames, nil
}

type ExportData struct {
	Run    RunMetadata  `json:"run"`
	Frames []pong.Frame `json:"frames"`
}

// ExportJSON writes a run's metadata and frames as one indented document.
func ExportJSON(w io.Writer, meta *RunMetadata, frames []pong.Frame) error {
	data := ExportData{Run: *meta, Frames: frames}
	if data.Frames == nil {
		data.Frames = []pong.Frame{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
