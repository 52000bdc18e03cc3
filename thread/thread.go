// Package thread pins GL and windowing work to the main OS thread.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import (
	"runtime"

	"github.com/faiface/mainthread"
)

func init() {
	runtime.LockOSThread()
}

// Main runs f on the main thread and returns its error.
// It must be called from the main goroutine, usually straight from main().
func Main(f func() error) error {
	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(f)
	})
	return err
}
