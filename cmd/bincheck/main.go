// Command bincheck runs one bin-day lookup against the council service and
// prints the sentence the skill would say.
//
//	TEST_HOUSE_NUMBER=12 TEST_STREET="Mill Rd" TEST_POSTCODE="CB1 2AB" bincheck -bin black
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iurnickita/binday/internal/config"
	"github.com/iurnickita/binday/internal/council"
	"github.com/iurnickita/binday/internal/logger"
	"github.com/iurnickita/binday/internal/service"
	"github.com/iurnickita/binday/internal/skill"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fs := flag.NewFlagSet("bincheck", flag.ExitOnError)
	house := fs.String("house", os.Getenv("TEST_HOUSE_NUMBER"), "house number")
	street := fs.String("street", os.Getenv("TEST_STREET"), "street")
	postcode := fs.String("postcode", os.Getenv("TEST_POSTCODE"), "postcode")
	bin := fs.String("bin", "", "bin colour or round type, empty for all")

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	client := council.NewClient(cfg.Council, zaplog)
	svc, err := service.NewService(cfg.Service, client, zaplog)
	if err != nil {
		return err
	}

	var intent skill.Intent
	if *bin != "" {
		intent.Slots = map[string]skill.Slot{skill.SlotBinColor: {Name: skill.SlotBinColor, Value: *bin}}
	}
	address := skill.AlexaAddress{
		AddressLine1: *house + " " + *street,
		PostalCode:   *postcode,
	}

	fmt.Printf("Looking up %s %s, %s...\n", *house, *street, *postcode)
	fmt.Println("Saying: " + svc.Fulfill(context.Background(), &intent, &address))
	return nil
}
