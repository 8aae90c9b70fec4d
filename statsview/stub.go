//go:build !statsview

package statsview

import "io"

func Launch(output io.Writer) {
}

func Available() bool {
	return false
}
