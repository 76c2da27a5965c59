package alphavantage

import (
	"strings"

	"github.com/jmanzanog/borsa-alphavantage/internal/domain"
)

// notFoundPhrases are lower-case fragments of vendor messages that mean the
// requested resource does not exist. Alpha Vantage has no error codes, so
// new phrasings classify as connector failures until added here.
var notFoundPhrases = []string{
	"invalid api call",
	"no data",
	"not found",
	"unknown symbol",
	"no matches",
}

func looksLikeNotFound(msg string) bool {
	m := strings.ToLower(msg)
	for _, phrase := range notFoundPhrases {
		if strings.Contains(m, phrase) {
			return true
		}
	}
	return false
}

// normalizeError narrows connector and untyped failures to NotFound(what)
// when their text says so. Untyped failures that stay failures are tagged
// with this connector's name. Other canonical kinds pass through.
func normalizeError(err error, what string) error {
	if err == nil {
		return nil
	}
	if e, ok := domain.AsError(err); ok {
		switch e.Kind {
		case domain.KindConnector:
			if looksLikeNotFound(e.Message) {
				return domain.NotFound(what)
			}
			return err
		case domain.KindOther:
			if looksLikeNotFound(e.Message) {
				return domain.NotFound(what)
			}
			return domain.ConnectorError(ConnectorName, e.Message)
		default:
			return err
		}
	}
	if looksLikeNotFound(err.Error()) {
		return domain.NotFound(what)
	}
	return domain.ConnectorError(ConnectorName, err.Error())
}
