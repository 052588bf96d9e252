package markup

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("scribe.markup")
