package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/richinsley/gotriangle/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame is one RGBA readback, bottom row first, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

var errEncoderExited = errors.New("ffmpeg exited before all frames were written")

// FFmpegEncoder pipes raw RGBA frames into an ffmpeg process.
type FFmpegEncoder struct {
	width      int
	height     int
	fps        int
	outputFile string
	ffmpegPath string
}

func NewFFmpegEncoder(opts *options.Options) *FFmpegEncoder {
	return &FFmpegEncoder{
		width:      opts.Width,
		height:     opts.Height,
		fps:        opts.FPS,
		outputFile: opts.OutputFile,
		ffmpegPath: opts.FFMPEGPath,
	}
}

func (e *FFmpegEncoder) getArgs() (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", e.width, e.height),
		"r":       e.fps,
	}
	// GL rows arrive bottom-up.
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// FrameSize is the byte length every frame must have.
func (e *FFmpegEncoder) FrameSize() int {
	return e.width * e.height * 4
}

// Consume starts ffmpeg and writes every frame received on frames to it. It
// returns when frames is closed and ffmpeg has finished, or as soon as ffmpeg
// or a write fails.
func (e *FFmpegEncoder) Consume(frames <-chan *Frame) error {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := e.getArgs()

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(e.outputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if e.ffmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(e.ffmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock any pending write if ffmpeg stops reading early.
		pipeReader.CloseWithError(errEncoderExited)
		errc <- err
	}()

	for frame := range frames {
		if len(frame.Pixels) != e.FrameSize() {
			pipeWriter.CloseWithError(io.ErrShortWrite)
			<-errc
			return fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), e.FrameSize())
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			pipeWriter.Close()
			if runErr := <-errc; runErr != nil {
				return fmt.Errorf("ffmpeg failed on frame %d: %w", frame.PTS, runErr)
			}
			return fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
		}
	}

	pipeWriter.Close()
	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	log.Printf("Encoder finished writing %s", e.outputFile)
	return nil
}
