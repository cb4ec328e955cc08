package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process-wide shader translator, starting it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr != nil {
			initErr = fmt.Errorf("failed to start shader translator: %w", initErr)
			return
		}
		log.Printf("Shader translator ready")
	})
	return translator, initErr
}

// Result is a translated stage plus the names the translator gave each
// variable in the emitted code.
type Result struct {
	Code  string
	Names map[string]string
}

// WebGL2ToGLSL330 translates an ESSL 3.00 source for stage ("vertex" or
// "fragment") to desktop GLSL 3.30.
func WebGL2ToGLSL330(source, stage string) (*Result, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, err
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	res := &Result{Code: out.Code, Names: make(map[string]string, len(out.Variables))}
	for name, v := range out.Variables {
		res.Names[name] = v.MappedName
	}
	return res, nil
}
