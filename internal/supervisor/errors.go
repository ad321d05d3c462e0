package supervisor

import "errors"

var errNoUnit = errors.New("unit factory returned no unit")
