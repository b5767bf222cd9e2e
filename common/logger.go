package common

import (
	"github.com/tdegeus/mate-cluster/status"
)

// MT: Constant after initialization; thread-safe
var Log status.Logger = status.Default()
