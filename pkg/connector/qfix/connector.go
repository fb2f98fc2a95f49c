// Package qfix implements the brokerage collaborators over a FIX 4.4 session,
// option chains via SecurityListRequest and underlying resolution via
// SecurityDefinitionRequest.
package qfix

import (
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/securitydefinitionrequest"
	"github.com/quickfixgo/fix44/securitylistrequest"
	"github.com/quickfixgo/quickfix"
	. "github.com/robaho/go-symbology/pkg/common"
)

const replyTimeoutMS = 30 * 1000

// a request awaiting its reply, correlated by SecurityReqID. the fields are
// written by the application callback before done is set
type pendingRequest struct {
	done       StatusBool
	tickers    []string
	underlying string
}

type Brokerage struct {
	connected bool
	sessionID quickfix.SessionID
	initiator *quickfix.Initiator
	loggedIn  StatusBool
	settings  string
	log       io.Writer
	timeoutMS int64
	nextReq   int64
	// holds SecurityReqID -> *pendingRequest, concurrent since replies arrive
	// on the session thread
	pending sync.Map
}

func NewBrokerage(props Properties, logOutput io.Writer) *Brokerage {
	if logOutput == nil {
		logOutput = os.Stdout
	}

	filename := props.GetString("fix", "")
	timeout := int64(props.GetInt("reply.timeout.ms", replyTimeoutMS))
	return &Brokerage{settings: filename, log: logOutput, timeoutMS: timeout}
}

func (b *Brokerage) IsConnected() bool {
	return b.connected
}

func (b *Brokerage) Connect() error {
	if b.connected {
		return AlreadyConnected
	}

	cfg, err := os.Open(b.settings)
	if err != nil {
		return err
	}
	appSettings, err := quickfix.ParseSettings(cfg)
	cfg.Close()
	if err != nil {
		return err
	}
	storeFactory := quickfix.NewMemoryStoreFactory()

	useLogging, _ := appSettings.GlobalSettings().BoolSetting("Logging")
	var logFactory quickfix.LogFactory
	if useLogging {
		logFactory = quickfix.NewScreenLogFactory()
	} else {
		logFactory = quickfix.NewNullLogFactory()
	}
	initiator, err := quickfix.NewInitiator(newApplication(b), storeFactory, appSettings, logFactory)
	if err != nil {
		return err
	}

	b.initiator = initiator
	b.sessionID = getSession(appSettings.SessionSettings())

	err = initiator.Start()
	if err != nil {
		return err
	}
	// wait for login up to 30 seconds
	if !b.loggedIn.WaitForTrue(30 * 1000) {
		return ConnectionFailed
	}

	b.connected = true

	return nil
}

func getSession(settings map[quickfix.SessionID]*quickfix.SessionSettings) quickfix.SessionID {
	if len(settings) > 1 {
		panic("only a single fix session is supported")
	}
	for k := range settings {
		return k
	}
	panic("no session found")
}

func (b *Brokerage) Disconnect() error {
	if !b.connected {
		return NotConnected
	}
	b.initiator.Stop()
	b.connected = false
	return nil
}

// ListOptions requests the option chain listed for an underlying root ticker.
// a venue reply of "no matching instruments" yields an empty slice, not an
// error
func (b *Brokerage) ListOptions(root string) ([]string, error) {
	if !b.loggedIn.IsTrue() {
		return nil, NotConnected
	}

	reqid := b.nextReqID()
	pending := &pendingRequest{}
	b.pending.Store(reqid, pending)
	defer b.pending.Delete(reqid)

	msg := securitylistrequest.New(field.NewSecurityReqID(reqid), field.NewSecurityListRequestType(enum.SecurityListRequestType_SYMBOL))
	msg.SetSymbol(root)
	msg.SetSecurityType(enum.SecurityType_OPTION)

	err := quickfix.SendToTarget(msg, b.sessionID)
	if err != nil {
		return nil, err
	}

	if !pending.done.WaitForTrue(b.timeoutMS) {
		return nil, RequestTimeout
	}
	return pending.tickers, nil
}

// QuoteUnderlying requests the security definition of an option root and
// returns the underlying ticker it carries, empty when the venue does not
// know it
func (b *Brokerage) QuoteUnderlying(root string) (string, error) {
	if !b.loggedIn.IsTrue() {
		return "", NotConnected
	}

	reqid := b.nextReqID()
	pending := &pendingRequest{}
	b.pending.Store(reqid, pending)
	defer b.pending.Delete(reqid)

	msg := securitydefinitionrequest.New(field.NewSecurityReqID(reqid), field.NewSecurityRequestType(enum.SecurityRequestType_SYMBOL))
	msg.SetSymbol(root)
	msg.SetSecurityType(enum.SecurityType_OPTION)

	err := quickfix.SendToTarget(msg, b.sessionID)
	if err != nil {
		return "", err
	}

	if !pending.done.WaitForTrue(b.timeoutMS) {
		return "", RequestTimeout
	}
	return pending.underlying, nil
}

func (b *Brokerage) nextReqID() string {
	return strconv.FormatInt(atomic.AddInt64(&b.nextReq, 1), 10)
}
