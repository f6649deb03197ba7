// objtool is a CLI utility for inspecting and rendering OBJ models.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/Faultbox/goraster/internal/engine/camera"
	"github.com/Faultbox/goraster/internal/engine/framebuffer"
	"github.com/Faultbox/goraster/internal/engine/lighting"
	"github.com/Faultbox/goraster/internal/engine/model"
	"github.com/Faultbox/goraster/internal/engine/renderer"
	"github.com/Faultbox/goraster/pkg/formats"
	"github.com/Faultbox/goraster/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "render":
		cmdRender(args)
	case "validate", "check":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - OBJ model utility

Usage:
  objtool <command> [options]

Commands:
  info <model.obj>              Show model information
  render <model.obj> [out.png]  Render the model to a PNG
  validate <model.obj>          Check that the model parses and loads

Examples:
  objtool info teapot.obj
  objtool render teapot.obj teapot.png
  objtool render -width 1920 -height 1080 -yaw 45 teapot.obj`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <model.obj>")
		os.Exit(1)
	}

	obj, err := formats.ParseOBJFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := model.FromOBJ(obj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	min, max := m.Bounds()

	fmt.Printf("Model:     %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", len(obj.Positions))
	fmt.Printf("TexCoords: %d\n", len(obj.TexCoords))
	fmt.Printf("Normals:   %d\n", len(obj.Normals))
	fmt.Printf("Triangles: %d\n", len(obj.Faces))
	fmt.Printf("Bounds:    min (%.3f, %.3f, %.3f)\n", min.X, min.Y, min.Z)
	fmt.Printf("           max (%.3f, %.3f, %.3f)\n", max.X, max.Y, max.Z)
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	width := fs.Int("width", 1280, "Image width")
	height := fs.Int("height", 720, "Image height")
	fov := fs.Float64("fov", 70, "Vertical field of view in degrees")
	yaw := fs.Float64("yaw", 30, "Camera yaw around the model in degrees")
	pitch := fs.Float64("pitch", 20, "Camera pitch in degrees")
	longitude := fs.Float64("longitude", -30, "Light longitude in degrees")
	latitude := fs.Float64("latitude", 65, "Light latitude in degrees")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool render [options] <model.obj> [out.png]")
		os.Exit(1)
	}

	outPath := "render.png"
	if fs.NArg() > 1 {
		outPath = fs.Arg(1)
	}

	m, err := model.LoadOBJFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Frame the model with an orbit camera at the requested angles.
	orbit := camera.NewOrbitCamera()
	orbit.RotationX = math.Radians(float32(*pitch))
	orbit.RotationY = math.Radians(float32(*yaw))
	orbit.FitToBounds(m.Bounds())

	cam := camera.New(*width, *height, float32(*fov))
	cam.Position = orbit.Position()
	cam.Rotation = orbit.Rotation()

	r := renderer.New(renderer.Config{
		LightDir: lighting.Direction(float32(*longitude), float32(*latitude)),
	})
	fb := framebuffer.New(*width, *height, framebuffer.DefaultPalette())

	stats := r.DrawModel(fb, cam, m)

	file, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s (%dx%d)\n", outPath, *width, *height)
	fmt.Printf("Faces: %d drawn, %d culled, %d off-screen\n",
		stats.FacesDrawn, stats.FacesCulled, stats.FacesClipped)
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool validate <model.obj>")
		os.Exit(1)
	}

	obj, err := formats.ParseOBJFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}

	if _, err := model.FromOBJ(obj); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: OK (%d vertices, %d triangles)\n", args[0], len(obj.Positions), len(obj.Faces))
}
