// Copyright CuriousMike56, 2026. All rights reserved.

// Package magick implements ImageMagick detection and execution. Version 7
// ships a single magick binary; version 6 installs separate convert and
// identify binaries. Both take the same operation arguments.
package magick

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const (
	binMagick   = "magick"   // ImageMagick 7 front-end
	binConvert  = "convert"  // ImageMagick 6 conversion binary
	binIdentify = "identify" // ImageMagick 6 inspection binary
)

// Tool provides image operations: checking availability, probing inputs,
// and running conversions.
type Tool interface {
	// Name returns the conversion binary name ("magick" or "convert").
	Name() string

	// Available reports whether the binary exists on PATH and responds
	// to a version probe.
	Available() bool

	// Identify checks that the image at path is readable by the tool.
	// Returns nil when it is, or an error describing the failure.
	Identify(path string) error

	// Convert runs one conversion with the given arguments: input paths,
	// operators, and the output path, in ImageMagick order.
	Convert(args ...string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunCapture(name string, args ...string) (stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCapture(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// tool implements Tool for a specific ImageMagick generation. The two
// generations share the same conversion arguments; they differ in binary
// names and in how identify is invoked.
type tool struct {
	bin          string
	identifyBin  string
	identifyArgs []string // leading args, e.g. ["identify"] under magick
	exec         executor
}

func (t *tool) Name() string { return t.bin }

func (t *tool) Available() bool {
	if _, err := t.exec.LookPath(t.bin); err != nil {
		return false
	}
	return t.exec.RunSilent(t.bin, "-version") == nil
}

func (t *tool) Identify(path string) error {
	args := make([]string, 0, len(t.identifyArgs)+1)
	args = append(args, t.identifyArgs...)
	args = append(args, path)

	if err := t.exec.RunSilent(t.identifyBin, args...); err != nil {
		return fmt.Errorf("image %s not readable by %s: %w", path, t.identifyBin, err)
	}
	return nil
}

func (t *tool) Convert(args ...string) error {
	stderr, err := t.exec.RunCapture(t.bin, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("running %s: %w: %s", t.bin, err, msg)
		}
		return fmt.Errorf("running %s: %w", t.bin, err)
	}
	return nil
}

func newMagick7(exec executor) *tool {
	return &tool{
		bin:          binMagick,
		identifyBin:  binMagick,
		identifyArgs: []string{"identify"},
		exec:         exec,
	}
}

func newMagick6(exec executor) *tool {
	return &tool{
		bin:         binConvert,
		identifyBin: binIdentify,
		exec:        exec,
	}
}

var defaultExec = &osExecutor{}

// DetectTool tries ImageMagick 7 first, falls back to the version 6
// binaries. Returns an error if neither generation is available.
func DetectTool() (Tool, error) {
	return detectTool(defaultExec)
}

func detectTool(exec executor) (Tool, error) {
	im7 := newMagick7(exec)
	if im7.Available() {
		return im7, nil
	}

	im6 := newMagick6(exec)
	if im6.Available() {
		return im6, nil
	}

	return nil, fmt.Errorf(
		"no ImageMagick installation available: neither %s nor %s found or operational",
		binMagick, binConvert,
	)
}

// ToolAt returns a Tool for an explicitly configured binary, bypassing
// PATH detection. The binary is assumed to speak the version 7 interface.
func ToolAt(bin string) Tool {
	return &tool{
		bin:          bin,
		identifyBin:  bin,
		identifyArgs: []string{"identify"},
		exec:         defaultExec,
	}
}
