package connector

import (
	"io"
	"os"

	"github.com/robaho/go-symbology/pkg/common"
	"github.com/robaho/go-symbology/pkg/connector/qfix"
)

// NewBrokerage returns the brokerage collaborator configured by props. fix is
// the only supported protocol
func NewBrokerage(props common.Properties, logOutput io.Writer) *qfix.Brokerage {
	if logOutput == nil {
		logOutput = os.Stdout
	}

	return qfix.NewBrokerage(props, logOutput)
}
