package recorder

import (
	"errors"
	"fmt"
	"io"

	"github.com/richinsley/hellotriangle/logger"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var ErrFrameSize = errors.New("frame size does not match the recording")

type Options struct {
	Width, Height int
	FPS           int
	OutputFile    string
	FFmpegPath    string
}

// Recorder pipes raw RGBA frames into an ffmpeg process.
// Frames arrive bottom row first, as glReadPixels returns them.
type Recorder struct {
	opts   Options
	pipe   *io.PipeWriter
	errc   chan error
	frames int
	log    *logger.Logger
}

func inputArgs(opts Options) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"r":       opts.FPS,
	}
}

func outputArgs(opts Options) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
}

// Start launches ffmpeg. Close must be called to flush the output file.
func Start(opts Options, log *logger.Logger) (*Recorder, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid recording size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := ffmpeg.Input("pipe:", inputArgs(opts)).
		Output(opts.OutputFile, outputArgs(opts)).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if opts.FFmpegPath != "" {
		cmd = cmd.SetFfmpegPath(opts.FFmpegPath)
	}

	r := &Recorder{opts: opts, pipe: pipeWriter, errc: make(chan error, 1), log: log}
	go func() {
		err := cmd.Run()
		// unblock a writer stuck on a dead process
		_ = pipeReader.CloseWithError(io.ErrClosedPipe)
		r.errc <- err
	}()

	log.Info().Str("file", opts.OutputFile).Int("fps", opts.FPS).Msgf("recording %dx%d", opts.Width, opts.Height)
	return r, nil
}

// WriteFrame sends one frame of width*height*4 bytes.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if len(pixels) != r.opts.Width*r.opts.Height*4 {
		return fmt.Errorf("%w: got %d bytes", ErrFrameSize, len(pixels))
	}
	if _, err := r.pipe.Write(pixels); err != nil {
		return fmt.Errorf("failed to write frame %d to ffmpeg: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Close ends the stream and waits for ffmpeg to finish.
func (r *Recorder) Close() error {
	_ = r.pipe.Close()
	err := <-r.errc
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	r.log.Info().Int("frames", r.frames).Str("file", r.opts.OutputFile).Msg("recording finished")
	return nil
}
