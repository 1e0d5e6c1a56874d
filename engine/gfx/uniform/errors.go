package uniform

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a name has no active uniform location in the
// program. GLSL compilers eliminate uniforms that don't contribute to the
// output, so a name present in shader source can still be not found here;
// the two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("uniform not found")

// TypeError reports that a name resolved to a location whose declared type
// disagrees with the type requested by the host. Distinct from ErrNotFound
// so callers can tell "fix the name" from "fix the type".
type TypeError struct {
	Name string
	Want TypeTag // type requested by the host
	Got  TypeTag // type declared in the program
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("uniform %q: program declares %s, host requested %s", e.Name, e.Got, e.Want)
}
