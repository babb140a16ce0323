// Package translate renders user-facing message text for the current locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/tliron/commonlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is used when the host reports no usable locale.
var Fallback = language.AmericanEnglish

var (
	once    sync.Once
	printer *message.Printer
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		commonlog.GetLogger("ookbf.translate").Warningf("locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback.String()}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(load)
	return printer.Sprintf(key, args...)
}
