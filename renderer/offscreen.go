package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/richinsley/gotriangle/encoder"
	progressbar "github.com/schollz/progressbar/v3"
)

const numBuffers = 3 // frames in flight between the render loop and the encoder

// FrameConsumer receives rendered frames until the channel is closed.
type FrameConsumer interface {
	Consume(frames <-chan *encoder.Frame) error
}

// RunOffscreen renders totalFrames frames of width×height into an offscreen
// target with a fixed clock of 1/fps seconds per frame and hands each readback
// to consumer. It returns the consumer's result.
func (r *Renderer) RunOffscreen(width, height, fps, totalFrames int, consumer FrameConsumer) error {
	if fps <= 0 || totalFrames <= 0 {
		return fmt.Errorf("invalid recording: %d frames at %d fps", totalFrames, fps)
	}
	target, err := r.device.NewRenderTarget(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen target: %w", err)
	}
	defer r.device.DeleteRenderTarget(target)

	log.Printf("Recording %d frames at %dx%d, %d fps", totalFrames, width, height, fps)
	frameChan := make(chan *encoder.Frame, numBuffers)
	encoderDoneChan := make(chan error, 1)

	// Start the consumer goroutine
	go func() {
		encoderDoneChan <- consumer.Consume(frameChan)
	}()

	bar := progressbar.Default(int64(totalFrames), "recording")
	timeStep := 1.0 / float64(fps)

	r.device.BindRenderTarget(target)
	defer r.device.BindRenderTarget(0)

	for i := 0; i < totalFrames; i++ {
		r.context.PollEvents()
		r.handleEvents()
		if r.context.ShouldClose() {
			log.Printf("Recording interrupted at frame %d", i)
			break
		}

		currentTime := float64(i) * timeStep
		if _, ok := r.RenderFrame(currentTime, width, height); !ok {
			close(frameChan)
			<-encoderDoneChan
			return errors.New("offscreen target has no area")
		}
		pixels := r.device.ReadPixels(width, height)

		select {
		case frameChan <- &encoder.Frame{Pixels: pixels, PTS: int64(i)}:
		case err := <-encoderDoneChan:
			if err == nil {
				err = errors.New("encoder stopped early")
			}
			return fmt.Errorf("encoder stopped at frame %d: %w", i, err)
		}
		r.frames++
		bar.Add(1)
	}

	// Close the channel to signal the consumer there are no more frames
	close(frameChan)
	bar.Finish()

	// Wait for the consumer to finish
	return <-encoderDoneChan
}
