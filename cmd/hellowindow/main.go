// Command hellowindow opens a window, uploads one triangle to a vertex buffer
// and clears the screen every frame until Escape is pressed.
package main

import (
	"os"

	"github.com/richinsley/hellotriangle/app"
)

func main() {
	os.Exit(app.Main(app.HelloWindow, os.Args[1:]))
}
