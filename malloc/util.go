package malloc

import "fmt"
import "errors"

// ErrorOutofMemory allocation exceeds arena's capacity, or the OS
// refused to reserve a new block.
var ErrorOutofMemory = errors.New("goarena.outofmemory")

// ErrorBadalignment alignment argument is not a positive power of 2.
var ErrorBadalignment = errors.New("goarena.badalignment")

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

var blkpoison = make([]byte, 1024)

func init() {
	for i := 0; i < len(blkpoison); i++ {
		blkpoison[i] = 0xff
	}
}
