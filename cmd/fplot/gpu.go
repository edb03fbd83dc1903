//go:build !nogpu

package main

// GPU shapes and tile rasterization when a device is available; gg falls
// back to the CPU otherwise. Build with -tags nogpu for a CPU-only binary.
import _ "github.com/gogpu/gg/gpu"
