package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	encoder "github.com/richinsley/gotriangle/encoder"
	gldevice "github.com/richinsley/gotriangle/gldevice"
	glfwcontext "github.com/richinsley/gotriangle/glfwcontext"
	graphics "github.com/richinsley/gotriangle/graphics"
	headless "github.com/richinsley/gotriangle/headless"
	options "github.com/richinsley/gotriangle/options"
	renderer "github.com/richinsley/gotriangle/renderer"
	shader "github.com/richinsley/gotriangle/shader"
)

func init() {
	runtime.LockOSThread()
}

// newContext opens the window, or a pbuffer when recording headless. The
// returned release func tears down everything that was acquired.
func newContext(opts *options.Options) (graphics.Context, func(), error) {
	if opts.Headless {
		ctx, err := headless.NewHeadless(opts.Width, opts.Height)
		if err != nil {
			return nil, nil, err
		}
		return ctx, ctx.Shutdown, nil
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, err
	}
	// If recording, the window is hidden and only used for its GL context.
	ctx, err := glfwcontext.New(opts, !opts.Record)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, err
	}
	return ctx, func() {
		ctx.Shutdown()
		glfwcontext.TerminateGraphics()
	}, nil
}

func runTriangle(opts *options.Options) error {
	ctx, release, err := newContext(opts)
	if err != nil {
		return err
	}
	defer release()

	dev, err := gldevice.New(ctx)
	if err != nil {
		return err
	}

	src := shader.Native()
	if opts.Translate {
		log.Println("Translating WebGL2 shaders to GLSL 330...")
		if src, err = shader.Translated(); err != nil {
			return err
		}
	}

	r, err := renderer.NewRenderer(ctx, dev, src, opts.SwapInterval)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	if opts.Record {
		if err := r.RunOffscreen(opts.Width, opts.Height, opts.FPS, opts.TotalFrames(), encoder.NewFFmpegEncoder(opts)); err != nil {
			return err
		}
		log.Printf("Successfully rendered to %s", opts.OutputFile)
		return nil
	}

	r.Run()
	return nil
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := runTriangle(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
