// Command hellotriangle draws a single orange triangle with a minimal
// vertex/fragment shader pair until the window is closed or Escape is pressed.
package main

import (
	"os"

	"github.com/richinsley/hellotriangle/app"
)

func main() {
	os.Exit(app.Main(app.HelloTriangle, os.Args[1:]))
}
