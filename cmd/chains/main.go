package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	. "github.com/robaho/go-symbology/pkg/common"
	"github.com/robaho/go-symbology/pkg/connector"
	"github.com/robaho/go-symbology/pkg/symbology"
	"github.com/robaho/go-symbology/pkg/universe"
)

func main() {
	symbol := flag.String("symbol", "", "underlying ticker")
	isIndex := flag.Bool("index", false, "the symbol is a cash index")
	expired := flag.Bool("expired", false, "include expired contracts")
	props := flag.String("props", "chains.properties", "properties file")
	flag.Parse()

	if *symbol == "" {
		flag.Usage()
		os.Exit(1)
	}

	p, err := NewProperties(*props)
	if err != nil {
		log.Fatal("unable to read properties ", err)
	}

	set := symbology.DefaultIndexSet()
	if file := p.GetString("indices", ""); file != "" {
		if err := set.Load(file); err != nil {
			log.Fatal("unable to load index roots ", err)
		}
	}
	codec := symbology.NewCodec(set)

	broker := connector.NewBrokerage(p, os.Stdout)
	if err := broker.Connect(); err != nil {
		log.Fatal("unable to connect ", err)
	}
	defer broker.Disconnect()

	resolver := universe.NewResolver(codec, broker, os.Stdout)
	if tz := p.GetString("timezone", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatal("unknown timezone ", err)
		}
		resolver.SetLocation(loc)
	}

	var s Symbol
	if *isIndex {
		s = NewIndex(*symbol, USA)
	} else {
		s = NewEquity(*symbol, USA)
	}

	symbols, err := resolver.LookupSymbols(s, *expired)
	if err != nil {
		log.Fatal(err)
	}

	for _, o := range symbols {
		fmt.Printf("%-22s %s %10s %s\n", o.Value, o.Expiry.Format("2006-01-02"), ToFixed(o.Strike).StringN(3), o.Right)
	}
	fmt.Println(len(symbols), "contracts")
}
