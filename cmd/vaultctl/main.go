// Command vaultctl is the non-interactive companion to the TUI client:
// one-shot vault operations for scripts and quick shell use.
//
// Usage examples:
//
//	vaultctl -init
//	vaultctl -generate -length 20 -no-symbols
//	vaultctl -add work-email -pw 's3cret!'
//	vaultctl -add work-email            (generates the password)
//	vaultctl -list
//	vaultctl -show work-email
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ops holds the operation flags. They are registered on flag.CommandLine
// before config.GetClientConfig so that the single flag.Parse call inside
// the config layer picks up both flag sets.
type ops struct {
	initVault bool
	generate  bool
	list      bool
	addLabel  string
	password  string
	showLabel string

	noUpper   bool
	noLower   bool
	noDigits  bool
	noSymbols bool
}

func registerOps() *ops {
	o := &ops{}

	flag.BoolVar(&o.initVault, "init", false, "Create the key file if it does not exist yet")
	flag.BoolVar(&o.generate, "generate", false, "Generate a password and print it with its strength")
	flag.BoolVar(&o.list, "list", false, "List stored record labels")
	flag.StringVar(&o.addLabel, "add", "", "Store a record under the given label")
	flag.StringVar(&o.password, "pw", "", "Password for -add (generated when omitted)")
	flag.StringVar(&o.showLabel, "show", "", "Print the password stored under the given label")

	flag.BoolVar(&o.noUpper, "no-upper", false, "Exclude uppercase letters when generating")
	flag.BoolVar(&o.noLower, "no-lower", false, "Exclude lowercase letters when generating")
	flag.BoolVar(&o.noDigits, "no-digits", false, "Exclude digits when generating")
	flag.BoolVar(&o.noSymbols, "no-symbols", false, "Exclude symbols when generating")

	return o
}

func (o *ops) policy(base models.PasswordPolicy) models.PasswordPolicy {
	base.Upper = base.Upper && !o.noUpper
	base.Lower = base.Lower && !o.noLower
	base.Digits = base.Digits && !o.noDigits
	base.Symbols = base.Symbols && !o.noSymbols
	return base
}

func main() {
	o := registerOps()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("vaultctl")
	services := service.NewServices(cfg, log)

	if err := run(o, cfg, services); err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		os.Exit(1)
	}
}

func run(o *ops, cfg *config.ClientConfig, services *service.Services) error {
	switch {
	case o.initVault:
		if err := services.VaultService.EnsureKey(); err != nil {
			return err
		}
		fmt.Printf("key file ready: %s\n", cfg.Storage.KeyPath)
		return nil

	case o.generate:
		password, err := services.GeneratorService.Generate(o.policy(services.GeneratorService.DefaultPolicy()))
		if err != nil {
			return err
		}
		report := services.StrengthService.Evaluate(password)
		fmt.Println(password)
		fmt.Printf("strength: %d/4", report.Score)
		if report.CrackTime != "" {
			fmt.Printf(" (crack time: %s)", report.CrackTime)
		}
		fmt.Println()
		for _, warning := range report.Warnings {
			fmt.Println("warning: " + warning)
		}
		return nil

	case o.addLabel != "":
		password := o.password
		if password == "" {
			generated, err := services.GeneratorService.Generate(o.policy(services.GeneratorService.DefaultPolicy()))
			if err != nil {
				return err
			}
			password = generated
			fmt.Println(password)
		}
		if err := services.VaultService.Add(models.VaultRecord{Label: o.addLabel, Password: password}); err != nil {
			return err
		}
		fmt.Printf("stored %q in %s\n", o.addLabel, cfg.Storage.VaultPath)
		return nil

	case o.list:
		records, err := services.VaultService.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("vault is empty")
			return nil
		}
		for _, record := range records {
			fmt.Println(record.Label)
		}
		return nil

	case o.showLabel != "":
		record, err := services.VaultService.Get(o.showLabel)
		if err != nil {
			return err
		}
		fmt.Println(record.Password)
		return nil
	}

	return errors.New("no operation given; use one of -init, -generate, -add, -list, -show")
}
