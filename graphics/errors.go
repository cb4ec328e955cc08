package graphics

import "errors"

var (
	// ErrInitialization means the windowing layer or the GL function loader
	// could not be brought up.
	ErrInitialization = errors.New("graphics initialization failed")
	// ErrWindowCreation means the window or its context could not be created.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrShaderCompile wraps a shader stage that failed to compile.
	ErrShaderCompile = errors.New("shader compilation failed")
	// ErrLink wraps a program that failed to link.
	ErrLink = errors.New("program link failed")
)
