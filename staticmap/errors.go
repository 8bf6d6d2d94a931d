package staticmap

import "fmt"

// LengthError reports a buffer whose length does not match the key type's
// cardinality. It is returned by the slice and buffer conversions.
type LengthError struct {
	Want int // the key type's cardinality
	Got  int // the length actually supplied
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("staticmap: buffer has %d elements, key cardinality requires exactly %d", e.Got, e.Want)
}
