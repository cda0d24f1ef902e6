package keplr

import (
	"strings"

	xc "github.com/openweb3-io/keplr-go/types"
)

// missingChainMarker is the text Keplr puts in enable errors for chains it
// has no chain info for.
const missingChainMarker = "no chain info"

// EnableErrorClassifier maps an opaque wallet enable error onto the error
// taxonomy.
type EnableErrorClassifier func(err error) error

// ClassifyEnableError is a best effort match on the wallet's error text.
// Anything it does not recognise becomes ErrEnableFailed.
func ClassifyEnableError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), missingChainMarker) {
		return xc.WrapErr(xc.ErrChainNotRegistered, err)
	}
	return xc.WrapErr(xc.ErrEnableFailed, err)
}
