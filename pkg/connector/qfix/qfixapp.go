package qfix

import (
	"fmt"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/securitydefinition"
	"github.com/quickfixgo/fix44/securitylist"
	"github.com/quickfixgo/quickfix"
)

type myApplication struct {
	*quickfix.MessageRouter
	b *Brokerage
}

func newApplication(b *Brokerage) *myApplication {
	app := new(myApplication)
	app.MessageRouter = quickfix.NewMessageRouter()
	app.AddRoute(securitylist.Route(app.onSecurityList))
	app.AddRoute(securitydefinition.Route(app.onSecurityDefinition))
	app.b = b
	return app
}

func (app *myApplication) OnCreate(sessionID quickfix.SessionID) {
}

func (app *myApplication) OnLogon(sessionID quickfix.SessionID) {
	if sessionID == app.b.sessionID {
		fmt.Fprintln(app.b.log, "we are logged in!")
		app.b.loggedIn.SetTrue()
	}
}

func (app *myApplication) OnLogout(sessionID quickfix.SessionID) {
	if sessionID == app.b.sessionID {
		fmt.Fprintln(app.b.log, "we are logged out!")
		app.b.loggedIn.SetFalse()
	}
}

func (app *myApplication) ToAdmin(message *quickfix.Message, sessionID quickfix.SessionID) {
}

func (app *myApplication) ToApp(message *quickfix.Message, sessionID quickfix.SessionID) error {
	return nil
}

func (app *myApplication) FromAdmin(message *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	return nil
}

func (app *myApplication) FromApp(message *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	err := app.Route(message, sessionID)
	if err != nil {
		fmt.Fprintln(app.b.log, "error processing message", err)
	}
	return err
}

func (app *myApplication) onSecurityList(msg securitylist.SecurityList, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	reqid, err := msg.GetSecurityReqID()
	if err != nil {
		return err
	}

	_pending, ok := app.b.pending.Load(reqid)
	if !ok {
		// not ours, or the requester already timed out
		return nil
	}
	pending := _pending.(*pendingRequest)

	result, err := msg.GetSecurityRequestResult()
	if err == nil && result != enum.SecurityRequestResult_VALID_REQUEST {
		// no instruments match, an empty universe rather than an error
		pending.done.SetTrue()
		return nil
	}

	group, err := msg.GetNoRelatedSym()
	if err != nil {
		return err
	}
	for i := 0; i < group.Len(); i++ {
		symbol, err := group.Get(i).GetSymbol()
		if err != nil {
			return err
		}
		pending.tickers = append(pending.tickers, symbol)
	}

	pending.done.SetTrue()
	return nil
}

func (app *myApplication) onSecurityDefinition(msg securitydefinition.SecurityDefinition, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	reqid, err := msg.GetSecurityReqID()
	if err != nil {
		return err
	}

	_pending, ok := app.b.pending.Load(reqid)
	if !ok {
		return nil
	}
	pending := _pending.(*pendingRequest)

	group, err := msg.GetNoUnderlyings()
	if err == nil && group.Len() > 0 {
		underlying, err := group.Get(0).GetUnderlyingSymbol()
		if err == nil {
			pending.underlying = underlying
		}
	}

	pending.done.SetTrue()
	return nil
}
