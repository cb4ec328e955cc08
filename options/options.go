package options

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures the triangle window and the optional recorder. The zero
// configuration returned by Default reproduces the classic GLFW example.
type Options struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Title        string `yaml:"title"`
	SwapInterval int    `yaml:"swap_interval"`
	Translate    bool   `yaml:"translate"` // route shaders through the WebGL2 translator

	// Recording options
	Record     bool    `yaml:"record"`
	Headless   bool    `yaml:"headless"` // record through EGL without a window
	Duration   float64 `yaml:"duration"`
	FPS        int     `yaml:"fps"`
	OutputFile string  `yaml:"output"`
	FFMPEGPath string  `yaml:"ffmpeg"`
}

func Default() *Options {
	return &Options{
		Width:        640,
		Height:       480,
		Title:        "OpenGL Triangle",
		SwapInterval: 1,
		Duration:     10.0,
		FPS:          60,
		OutputFile:   "triangle.mp4",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return opts, nil
}

func (o *Options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "Width of the window")
	fs.IntVar(&o.Height, "height", o.Height, "Height of the window")
	fs.StringVar(&o.Title, "title", o.Title, "Window title")
	fs.IntVar(&o.SwapInterval, "swap", o.SwapInterval, "Swap interval (0 disables vsync)")
	fs.BoolVar(&o.Translate, "translate", o.Translate, "Translate the WebGL2 shader sources to desktop GLSL")
	fs.BoolVar(&o.Record, "record", o.Record, "Enable recording mode")
	fs.BoolVar(&o.Headless, "headless", o.Headless, "Record without a window (EGL, Linux only)")
	fs.Float64Var(&o.Duration, "duration", o.Duration, "Duration to record in seconds")
	fs.IntVar(&o.FPS, "fps", o.FPS, "Frames per second for recording")
	fs.StringVar(&o.OutputFile, "output", o.OutputFile, "Output file name for recording")
	fs.StringVar(&o.FFMPEGPath, "ffmpeg", o.FFMPEGPath, "Path to ffmpeg executable")
}

// Parse builds Options from command line arguments. When -config is given the
// file is loaded first and flags set explicitly on the command line win.
func Parse(name string, args []string) (*Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with option defaults")
	opts := Default()
	opts.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			return nil, err
		}
		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		loaded.bind(overrides)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overrides.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, setErr
		}
		opts = loaded
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", o.Width, o.Height))
	}
	if o.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", o.SwapInterval))
	}
	if o.Headless && !o.Record {
		errs = append(errs, errors.New("headless requires record mode"))
	}
	if o.Record {
		if o.FPS <= 0 {
			errs = append(errs, fmt.Errorf("fps must be positive, got %d", o.FPS))
		}
		if o.Duration <= 0 {
			errs = append(errs, fmt.Errorf("duration must be positive, got %g", o.Duration))
		}
		if o.OutputFile == "" {
			errs = append(errs, errors.New("output file is required when recording"))
		}
	}
	return errors.Join(errs...)
}

// TotalFrames is the number of frames a recording of Duration seconds holds.
func (o *Options) TotalFrames() int {
	return int(o.Duration * float64(o.FPS))
}
