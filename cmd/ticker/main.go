package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/securitydefinitionrequest"

	. "github.com/robaho/go-symbology/pkg/common"
	"github.com/robaho/go-symbology/pkg/symbology"
)

func main() {
	decode := flag.String("decode", "", "decode a brokerage ticker")
	underlying := flag.String("underlying", "", "underlying brokerage ticker hint, for equity options with punctuated underlyings")
	encode := flag.Bool("encode", false, "encode a symbol, see -root/-type/-right/-strike/-expiry")
	root := flag.String("root", "", "ticker of the security or of the option underlying")
	typ := flag.String("type", "equity", "security type of -root, equity or index")
	right := flag.String("right", "call", "option right, call or put")
	strike := flag.String("strike", "", "option strike, empty encodes -root itself")
	expiry := flag.String("expiry", "", "option expiry, YYYY-MM-DD")
	indices := flag.String("indices", "", "index root list file, added to the built-in set")
	showFix := flag.Bool("fix", false, "also print the fix instrument fields of the decoded symbol")
	flag.Parse()

	set := symbology.DefaultIndexSet()
	if *indices != "" {
		if err := set.Load(*indices); err != nil {
			log.Fatal("unable to load index roots ", err)
		}
	}
	codec := symbology.NewCodec(set)

	if *decode != "" {
		s, err := codec.Decode(*decode, *underlying)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s)
		if s.IsOption() {
			fmt.Println("expiry", s.Expiry.Format("2006-01-02"), string(s.Right), s.Strike.String(), string(s.Style))
		}
		if *showFix {
			msg := securitydefinitionrequest.New(field.NewSecurityReqID("1"), field.NewSecurityRequestType(enum.SecurityRequestType_SYMBOL))
			SetInstrumentFields(msg.Body, s)
			fmt.Println(msg.ToMessage().String())
		}
		return
	}

	if *encode {
		var s Symbol
		base := NewEquity(*root, USA)
		if *typ == "index" {
			base = NewIndex(*root, USA)
		}
		if *strike == "" {
			s = base
		} else {
			r := Call
			if *right == "put" {
				r = Put
			}
			e, err := time.Parse("2006-01-02", *expiry)
			if err != nil {
				log.Fatal("bad expiry ", err)
			}
			s = NewOption(base, USA, r, NewDecimal(*strike), e)
		}
		ticker, err := codec.Encode(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ticker)
		return
	}

	flag.Usage()
	os.Exit(1)
}
