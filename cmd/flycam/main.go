package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/flycam"
	"github.com/gekko3d/flycam/glfwinput"
)

func init() {
	// GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML camera config")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
		debug      = flag.Bool("debug", false, "log camera state every second")
	)
	flag.Parse()

	logger := flycam.NewDefaultLogger("flycam", *debug)

	cfg := flycam.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = flycam.LoadConfigFile(*configPath); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, *width, *height, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg flycam.Config, width, height int, logger flycam.Logger) error {
	if aspect, ok := glfwinput.AspectRatio(width, height); ok {
		cfg.Settings.AspectRatio = aspect
	}
	cam, err := cfg.NewCamera(flycam.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	// No rendering happens here; the window only supplies input.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(width, height, "flycam", nil, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()

	queue := &glfwinput.Queue{}
	glfwinput.Attach(win, queue)

	captured := true
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	clock := flycam.NewClock()
	clock.MaxDelta = 250 * time.Millisecond
	lastReport := time.Now()

	logger.Infof("flying from %v, yaw %.1f pitch %.1f", cam.Position(), cam.Yaw(), cam.Pitch())
	for !win.ShouldClose() {
		glfw.PollEvents()

		if w, h, ok := queue.TakeResize(); ok {
			if aspect, ok := glfwinput.AspectRatio(w, h); ok {
				if err := cam.SetAspectRatio(aspect); err != nil {
					logger.Warnf("resize: %v", err)
				}
			}
		}

		queue.Drain(func(ev flycam.Event) {
			if key, ok := ev.(flycam.KeyEvent); ok && key.Pressed {
				switch key.Code {
				case flycam.KeyEscape:
					win.SetShouldClose(true)
					return
				case flycam.KeyTab:
					captured = !captured
					if captured {
						win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
					} else {
						win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
					}
					cam.ResetCursor()
					return
				}
			}
			if _, ok := ev.(flycam.PointerMoveEvent); ok && !captured {
				return
			}
			cam.ProcessInput(ev)
		})

		cam.Update(clock.Tick())

		if logger.DebugEnabled() && time.Since(lastReport) >= time.Second {
			lastReport = time.Now()
			logger.Debugf("position %v yaw %.1f pitch %.1f direction %v",
				cam.Position(), cam.Yaw(), cam.Pitch(), cam.Direction())
		}

		// Pace the loop roughly like a vsynced frame.
		time.Sleep(time.Second / 120)
	}
	return nil
}
